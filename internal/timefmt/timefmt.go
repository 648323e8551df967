// Package timefmt renders the coarse relative timestamps the notification
// and chat panels show.
package timefmt

import (
	"fmt"
	"time"
)

// Ago buckets now-t with integer division and no rounding: under a minute is
// "just now", then whole minutes, hours, days.
func Ago(now, t time.Time) string {
	diff := now.Sub(t)
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	if minutes < 1 {
		return "just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", days)
}
