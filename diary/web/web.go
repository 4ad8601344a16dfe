// Package web embeds the entry form and calendar pages.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the site root: index.html, history.html, css/ and js/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: missing embedded static directory: " + err.Error())
	}
	return sub
}
