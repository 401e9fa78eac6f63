package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Load parses the embedded page templates into one set.
func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.tmpl"))
}
