package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var htmlFiles embed.FS

var all = template.Must(template.New("all").ParseFS(htmlFiles, "*.html"))

var Home = ensure("home.html")

func ensure(name string) *template.Template {
	tmpl := all.Lookup(name)
	if tmpl == nil {
		panic("template " + name + " not found")
	}
	return tmpl
}
