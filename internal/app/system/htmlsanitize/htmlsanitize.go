// Package htmlsanitize sanitizes user-supplied HTML before it is stored
// or rendered. Used for profile bios and project pitches.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// policy is bluemonday's UGC policy: standard formatting tags, safe
// links, no scripts or event handlers. Built once; Policy values are
// safe for concurrent use.
var policy = bluemonday.UGCPolicy()

// Sanitize returns the input with unsafe HTML removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// SanitizeHTML sanitizes and marks the result as safe for templates.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(policy.Sanitize(s))
}
