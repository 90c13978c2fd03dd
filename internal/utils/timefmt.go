package utils

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatDate renders the display timestamp attached to posts and comments:
// relative within the last 24 hours, calendar-style beyond that.
func FormatDate(t time.Time) string {
	if time.Since(t) < 24*time.Hour {
		return humanize.Time(t)
	}
	return t.Format("01/02/2006 3:04 PM")
}
