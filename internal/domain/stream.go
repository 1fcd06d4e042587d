package domain

import "time"

// ReportEventType - тип события жизненного цикла отчёта
type ReportEventType string

const (
	ReportCreated ReportEventType = "report.created"
	ReportUpvoted ReportEventType = "report.upvoted"
	ReportDeleted ReportEventType = "report.deleted"
)

// ReportEvent публикуется в стрим после каждого изменения хранилища
type ReportEvent struct {
	Type       ReportEventType `json:"type"`
	ReportID   string          `json:"report_id"`
	ReportType ReportType      `json:"report_type,omitempty"`
	Upvotes    int             `json:"upvotes"`
	SessionID  string          `json:"session_id"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
