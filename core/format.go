package core

import (
	"fmt"
	"time"
)

// WeekdayNames maps the Monday-based weekday index used by
// StatsReport.ByWeekday to a display name.
var WeekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayIndex converts time.Weekday (Sunday = 0) to the Monday-based
// index used throughout the report.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// FormatHour renders an hour of day in 12-hour form, e.g. 0 → "12AM",
// 13 → "1PM".
func FormatHour(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d%s", h, suffix)
}

// Percentage returns part/whole as a rounded integer percentage.
// A zero whole yields 0.
func Percentage(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(float64(part)/float64(whole)*100 + 0.5)
}

// RelativeTime formats a time.Time as a human-readable relative string.
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}
