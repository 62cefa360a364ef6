package html

import (
	"html/template"
	"time"

	"github.com/sonnes/chatroast/core"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatTime":   formatTime,
		"relativeTime": core.RelativeTime,
	}
}

func formatTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}
