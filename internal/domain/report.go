package domain

import "time"

// ReportType - категория отчёта, закрытый список
type ReportType string

const (
	ReportTypeDangerous  ReportType = "dangerous"
	ReportTypeNotBusy    ReportType = "not-busy"
	ReportTypeNoSecurity ReportType = "no-security"
)

// ReportTypes в порядке отображения
var ReportTypes = []ReportType{ReportTypeDangerous, ReportTypeNotBusy, ReportTypeNoSecurity}

type reportTypeStyle struct {
	badge string
	popup string
	color string
	icon  string
}

var reportTypeStyles = map[ReportType]reportTypeStyle{
	ReportTypeDangerous:  {badge: "Dangerous", popup: "Dangerous Area", color: "#ef4444", icon: "alert-triangle"},
	ReportTypeNotBusy:    {badge: "Isolated", popup: "Isolated/Not Busy", color: "#f59e0b", icon: "users"},
	ReportTypeNoSecurity: {badge: "No Security", popup: "Lacks Security", color: "#8b5cf6", icon: "shield-off"},
}

func (t ReportType) Valid() bool {
	_, ok := reportTypeStyles[t]
	return ok
}

// BadgeLabel - подпись на карточке ленты
func (t ReportType) BadgeLabel() string { return reportTypeStyles[t].badge }

// Label - подпись в попапе маркера и в форме
func (t ReportType) Label() string { return reportTypeStyles[t].popup }

func (t ReportType) Color() string { return reportTypeStyles[t].color }

func (t ReportType) Icon() string { return reportTypeStyles[t].icon }

// SafetyReport - отчёт сообщества о небезопасном месте.
// Position nil означает, что маркер на карте не рисуется.
type SafetyReport struct {
	ID           string       `json:"id"`
	Geo          GeoPoint     `json:"geo"`
	Position     *MapPosition `json:"position,omitempty"`
	Type         ReportType   `json:"type"`
	LocationName string       `json:"location_name"`
	Address      string       `json:"address"`
	Description  string       `json:"description"`
	Timestamp    time.Time    `json:"timestamp"`
	Upvotes      int          `json:"upvotes"`
	ImageURL     string       `json:"image_url"`
}

// Plotted - есть ли у отчёта позиция на карте
func (r *SafetyReport) Plotted() bool {
	return r.Position != nil
}

// Filter - выбранная категория ленты
type Filter string

const FilterAll Filter = "all"

func (f Filter) Valid() bool {
	return f == FilterAll || ReportType(f).Valid()
}

// Matches - попадает ли отчёт под фильтр
func (f Filter) Matches(r SafetyReport) bool {
	return f == FilterAll || ReportType(f) == r.Type
}

// Apply возвращает отчёты под фильтром, сохраняя порядок
func (f Filter) Apply(reports []SafetyReport) []SafetyReport {
	if f == FilterAll {
		return reports
	}
	out := make([]SafetyReport, 0, len(reports))
	for _, r := range reports {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
