package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2026, 2, 12, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "Just now"},
		{"59 minutes", 59 * time.Minute, "Just now"},
		{"one hour", time.Hour, "1h ago"},
		{"23 hours", 23*time.Hour + 59*time.Minute, "23h ago"},
		{"one day", 24 * time.Hour, "Yesterday"},
		{"47 hours", 47 * time.Hour, "Yesterday"},
		{"two days", 48 * time.Hour, "2 days ago"},
		{"ten days", 10*24*time.Hour + 5*time.Hour, "10 days ago"},
		{"future", -2 * time.Hour, "Just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimeAgo(now, now.Add(-tt.ago)))
		})
	}
}
