// Package web holds the documentation page and the browser demos served by
// the relay.
package web

import (
	"embed"
	"io/fs"
)

//go:embed public
var public embed.FS

// Public returns the embedded public directory rooted at its top
func Public() fs.FS {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
