package visualizer

import (
	"embed"
	"html/template"
)

//go:embed views/*.html
var viewsFS embed.FS

// views holds the parsed page templates, embedded at build time.
var views = template.Must(template.ParseFS(viewsFS, "views/*.html"))
