package dto

import (
	"time"

	"github.com/safestreets-service/internal/domain"
)

// Header - шапка приложения
type Header struct {
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
}

// StateResponse - снапшот оболочки приложения для текущей сессии
type StateResponse struct {
	User      domain.User          `json:"user"`
	Quota     domain.Quota         `json:"quota"`
	ActiveTab domain.Tab           `json:"active_tab"`
	Filter    domain.Filter        `json:"filter"`
	Composer  domain.ComposerState `json:"composer"`
	Header    Header               `json:"header"`
}

// AuthResponse - токен новой сессии
type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	State     StateResponse `json:"state"`
}

// ReportCard - карточка отчёта в ленте
type ReportCard struct {
	ID           string            `json:"id"`
	ImageURL     string            `json:"image_url"`
	Type         domain.ReportType `json:"type"`
	Badge        string            `json:"badge"`
	Color        string            `json:"color"`
	LocationName string            `json:"location_name"`
	Address      string            `json:"address"`
	Description  string            `json:"description"`
	Excerpt      string            `json:"excerpt"`
	Age          string            `json:"age"`
	Upvotes      int               `json:"upvotes"`
}

// FeedResponse - отфильтрованная лента
type FeedResponse struct {
	Filter  domain.Filter `json:"filter"`
	Cards   []ReportCard  `json:"cards"`
	Total   int           `json:"total"`
	Message string        `json:"message,omitempty"`
}

// ReportResponse - отчёт после изменения вместе с остатком лимитов
type ReportResponse struct {
	Report domain.SafetyReport `json:"report"`
	Quota  domain.Quota        `json:"quota"`
}

// Popup - открытый попап маркера
type Popup struct {
	ReportID     string            `json:"report_id"`
	Type         domain.ReportType `json:"type"`
	Label        string            `json:"label"`
	Color        string            `json:"color"`
	LocationName string            `json:"location_name"`
	Address      string            `json:"address"`
	Description  string            `json:"description"`
	Upvotes      int               `json:"upvotes"`
	Age          string            `json:"age"`
}

// LegendEntry - строка легенды карты
type LegendEntry struct {
	Type  domain.ReportType `json:"type"`
	Label string            `json:"label"`
	Color string            `json:"color"`
	Icon  string            `json:"icon"`
}

// MapViewResponse - всё, что нужно для отрисовки карты
type MapViewResponse struct {
	Pan         domain.ScreenPoint  `json:"pan"`
	Zoom        float64             `json:"zoom"`
	Dragging    bool                `json:"dragging"`
	Candidate   *domain.MapPosition `json:"candidate,omitempty"`
	Markers     []domain.Marker     `json:"markers"`
	Popup       *Popup              `json:"popup,omitempty"`
	Legend      []LegendEntry       `json:"legend"`
	Attribution string              `json:"attribution"`
	ImageURL    string              `json:"image_url"`
}

// PointerResponse - результат события указателя
type PointerResponse struct {
	PinPlaced bool            `json:"pin_placed"`
	Viewport  domain.Viewport `json:"viewport"`
}

// ProfileResponse - экран профиля
type ProfileResponse struct {
	Name             string       `json:"name"`
	Email            string       `json:"email,omitempty"`
	Phone            string       `json:"phone,omitempty"`
	ActiveSince      string       `json:"active_since"`
	Quota            domain.Quota `json:"quota"`
	ReportsSubmitted int          `json:"reports_submitted"`
	UpvotesGiven     int          `json:"upvotes_given"`
	CommunityImpact  string       `json:"community_impact"`
	Tips             []string     `json:"tips"`
}

// HealthResponse - ответ проверки здоровья
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
	Reports  int    `json:"reports"`
}
