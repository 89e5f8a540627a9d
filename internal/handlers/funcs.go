package handlers

import (
	"html/template"
	"time"

	"github.com/wonderhood/web/internal/services"
)

// TemplateFuncs is the shared FuncMap the router installs before parsing
// layouts and partials.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"year":        func() string { return time.Now().In(tzDenver).Format("2006") },
		"fmtDate":     fmtDate,
		"fmtDateTime": fmtDateTime,
		"apiDate":     fmtAPIDate,
		"phoneUS":     services.E164ToUS,
		"grade":       services.DisplayGrade,
		"safeHTML":    services.SanitizeHTML,
		"nl2br":       services.TextToHTML,
		"add":         func(a, b int) int { return a + b },
		"iterate": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
		// childVal indexes the signup form's parallel child slices without
		// tripping over short submissions.
		"childVal": func(s []string, i int) string {
			if i < len(s) {
				return s[i]
			}
			return ""
		},
	}
}
