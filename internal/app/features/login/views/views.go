package login

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var files embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "login",
		FS:       files,
		Patterns: []string{"templates/*.gohtml"},
	})
}
