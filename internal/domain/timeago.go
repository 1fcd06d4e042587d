package domain

import (
	"fmt"
	"time"
)

// FormatTimeAgo - относительный возраст отчёта для карточки ленты
func FormatTimeAgo(now, t time.Time) string {
	hours := int(now.Sub(t) / time.Hour)
	if hours < 1 {
		return "Just now"
	}
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	days := hours / 24
	if days == 1 {
		return "Yesterday"
	}
	return fmt.Sprintf("%d days ago", days)
}
