package services

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var ugcPolicy = bluemonday.UGCPolicy()

// SanitizeHTML cleans backend-sourced rich text (event and opportunity
// descriptions) before it is rendered unescaped in a template.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(ugcPolicy.Sanitize(s))
}

// TextToHTML escapes plain text and turns newlines into <br> for display.
func TextToHTML(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	esc := template.HTMLEscapeString(s)
	esc = strings.ReplaceAll(esc, "\n", "<br>")
	return template.HTML(esc)
}
