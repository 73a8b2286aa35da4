package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Shared layout partials used by every feature's page templates.
// Feature templates open with {{template "page_top" .}} and close with
// {{template "page_bottom" .}}; both expect a viewdata.BaseVM (or a
// struct embedding one) as dot.
//
//go:embed templates/*.gohtml
var FS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the shared template set. Safe to call
// more than once; only the first call registers.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
