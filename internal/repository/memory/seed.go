package memory

import (
	"time"

	"github.com/safestreets-service/internal/domain"
)

var manila = time.FixedZone("PHT", 8*60*60)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, manila)
}

func pos(x, y float64) *domain.MapPosition {
	return &domain.MapPosition{X: x, Y: y}
}

const (
	imgStreet = "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=800"
	imgQuiet  = "https://images.unsplash.com/photo-1480714378408-67cf0d13bc1b?w=800"
	imgCorner = "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=800"
	imgNarrow = "https://images.unsplash.com/photo-1506521781263-d8422e82f27a?w=800"
)

// SeedReports - демонстрационные отчёты по Балагтасу, Булакан
func SeedReports() []domain.SafetyReport {
	return []domain.SafetyReport{
		{
			ID:           "1",
			Geo:          domain.GeoPoint{Lat: 14.811488, Lng: 120.893985},
			Position:     pos(28, 50),
			Type:         domain.ReportTypeDangerous,
			LocationName: "Florante St near Puremart",
			Address:      "Florante St, Balagtas, Bulacan",
			Description:  "Dark street corner with no lighting after sunset. Limited visibility and isolated area after stores close at 8 PM.",
			Timestamp:    at(2026, time.February, 10, 20, 30),
			Upvotes:      24,
			ImageURL:     imgStreet,
		},
		{
			ID:           "2",
			Geo:          domain.GeoPoint{Lat: 14.809512, Lng: 120.895123},
			Position:     pos(52, 27),
			Type:         domain.ReportTypeNotBusy,
			LocationName: "MHAY'S STORE Area",
			Address:      "Near MHAY'S STORE, Balagtas, Bulacan",
			Description:  "Very quiet street with minimal foot traffic especially during afternoon hours. Few people pass through this area.",
			Timestamp:    at(2026, time.February, 11, 8, 15),
			Upvotes:      12,
			ImageURL:     imgQuiet,
		},
		{
			ID:           "3",
			Geo:          domain.GeoPoint{Lat: 14.813245, Lng: 120.892341},
			Position:     pos(88, 25),
			Type:         domain.ReportTypeNoSecurity,
			LocationName: "Jecaths Pet Store Corner",
			Address:      "Balagtas, Bulacan",
			Description:  "No security cameras visible in this corner area. No security guards or lighting at night.",
			Timestamp:    at(2026, time.February, 10, 14, 20),
			Upvotes:      8,
			ImageURL:     imgCorner,
		},
		{
			ID:           "4",
			Geo:          domain.GeoPoint{Lat: 14.810789, Lng: 120.894567},
			Position:     pos(26, 63),
			Type:         domain.ReportTypeDangerous,
			LocationName: "Florante St near Cabin's DIY Gift Shop",
			Address:      "Florante St, Balagtas, Bulacan",
			Description:  "Narrow street section with poor lighting. Multiple residents reported feeling unsafe walking here at night.",
			Timestamp:    at(2026, time.February, 9, 18, 45),
			Upvotes:      31,
			ImageURL:     imgNarrow,
		},
		{
			ID:           "5",
			Geo:          domain.GeoPoint{Lat: 14.812156, Lng: 120.891234},
			Position:     pos(8, 30),
			Type:         domain.ReportTypeNotBusy,
			LocationName: "Near JD Betta Fish",
			Address:      "Balagtas, Bulacan",
			Description:  "Isolated side street with very few people. Area becomes deserted after early evening when shops close.",
			Timestamp:    at(2026, time.February, 8, 16, 20),
			Upvotes:      15,
			ImageURL:     imgQuiet,
		},
		{
			ID:           "6",
			Geo:          domain.GeoPoint{Lat: 14.811234, Lng: 120.892567},
			Position:     pos(44, 10),
			Type:         domain.ReportTypeNoSecurity,
			LocationName: "Mama Glo House Area",
			Address:      "Near Mama Glo House, Balagtas, Bulacan",
			Description:  "Residential area with no street lighting and no visible security measures. Completely dark at night.",
			Timestamp:    at(2026, time.February, 11, 19, 15),
			Upvotes:      7,
			ImageURL:     imgCorner,
		},
		{
			ID:           "7",
			Geo:          domain.GeoPoint{Lat: 14.810456, Lng: 120.893789},
			Position:     pos(9, 18),
			Type:         domain.ReportTypeDangerous,
			LocationName: "Sulok Elementary School Side Street",
			Address:      "Near Sulok Elementary School, Balagtas, Bulacan",
			Description:  "Poorly lit street beside the school. Reports of suspicious activity after school hours when area is empty.",
			Timestamp:    at(2026, time.February, 7, 21, 0),
			Upvotes:      19,
			ImageURL:     imgStreet,
		},
	}
}
