package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgo(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"zero", 0, "just now"},
		{"under a minute", 59 * time.Second, "just now"},
		{"exactly a minute", time.Minute, "1m ago"},
		{"truncates seconds", 90 * time.Second, "1m ago"},
		{"fifty nine minutes", 59 * time.Minute, "59m ago"},
		{"exactly an hour", time.Hour, "1h ago"},
		{"truncates minutes", 90 * time.Minute, "1h ago"},
		{"twenty three hours", 23 * time.Hour, "23h ago"},
		{"exactly a day", 24 * time.Hour, "1d ago"},
		{"truncates hours", 36 * time.Hour, "1d ago"},
		{"a week", 7 * 24 * time.Hour, "7d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ago(now, now.Add(-tt.ago)))
		})
	}
}
