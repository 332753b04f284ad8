// Package web carries the browser front end compiled into the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every embedded page template. The set is fixed at build
// time, so a parse failure is a programming error.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}

// StaticFS exposes the embedded static tree, rooted at its contents, ready
// for http.FileServer.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
