package domain

import (
	"fmt"
	"strings"
)

// Marker - отчёт, нарисованный на карте
type Marker struct {
	ReportID string      `json:"report_id"`
	Type     ReportType  `json:"type"`
	Position MapPosition `json:"position"`
	Color    string      `json:"color"`
	Icon     string      `json:"icon"`
	Selected bool        `json:"selected"`
}

// MarkersFor строит маркеры для отчётов с позицией на карте
func MarkersFor(reports []SafetyReport, openPopup string) []Marker {
	markers := make([]Marker, 0, len(reports))
	for _, r := range reports {
		if !r.Plotted() {
			continue
		}
		markers = append(markers, Marker{
			ReportID: r.ID,
			Type:     r.Type,
			Position: *r.Position,
			Color:    r.Type.Color(),
			Icon:     r.Type.Icon(),
			Selected: r.ID == openPopup,
		})
	}
	return markers
}

// StaticMapSpec - параметры статичного растра карты
type StaticMapSpec struct {
	Style  string
	Center GeoPoint
	Zoom   float64
	Width  int
	Height int
}

// CacheKey - ключ растра в кеше
func (s StaticMapSpec) CacheKey() string {
	return fmt.Sprintf("map:image:%s:%.6f,%.6f,%.2f:%dx%d",
		strings.ReplaceAll(s.Style, "/", "_"), s.Center.Lng, s.Center.Lat, s.Zoom, s.Width, s.Height)
}

// StaticImage - загруженный растр карты
type StaticImage struct {
	Data        []byte
	ContentType string
}
