package service

import (
	"fmt"
	"time"
)

// NeverLabel is shown when no timestamp exists.
const NeverLabel = "Never"

// RelativeTimeFormatter renders timestamps as "Just now", "N minutes ago",
// "N hours ago", "N days ago" or, from 7 days on, a calendar date.
type RelativeTimeFormatter struct {
	Layout   string
	Location *time.Location
}

func NewRelativeTimeFormatter(layout string, loc *time.Location) RelativeTimeFormatter {
	if layout == "" {
		layout = "1/2/2006"
	}
	if loc == nil {
		loc = time.Local
	}
	return RelativeTimeFormatter{Layout: layout, Location: loc}
}

// Format describes t relative to now. Timestamps in the future read "Just now".
func (f RelativeTimeFormatter) Format(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int64(diff / time.Minute)
	hours := int64(diff / time.Hour)
	days := int64(diff / (24 * time.Hour))

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%d minute%s ago", mins, plural(mins))
	case hours < 24:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case days < 7:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	}
	return t.In(f.Location).Format(f.Layout)
}

// FormatOptional is Format with NeverLabel for a nil timestamp.
func (f RelativeTimeFormatter) FormatOptional(t *time.Time, now time.Time) string {
	if t == nil {
		return NeverLabel
	}
	return f.Format(*t, now)
}

func plural(n int64) string {
	if n == 1 {
		return ""
	}
	return "s"
}
