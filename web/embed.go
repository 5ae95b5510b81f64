// Package web embeds the static chat page served at the server root.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded static assets rooted at the static dir.
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
