// Package htmlsanitize strips dangerous markup from user-supplied HTML.
// Notice bodies accept rich text from admins and faculty, so everything is
// run through a single shared policy before storage.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowElements("u", "s", "sub", "sup", "mark")
	return p
}

// Sanitize returns s with unsafe tags and attributes removed. Safe
// formatting (paragraphs, lists, tables, links, code blocks) survives.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup at all.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
