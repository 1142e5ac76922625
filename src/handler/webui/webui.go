package webui

import (
	"embed"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

//go:embed public view
var files embed.FS

// Files returns the web UI files. Debug builds read them from disk so they
// can be edited without rebuilding.
func Files(build string) fs.FS {
	if build == "release" {
		return files
	}
	if build == "debug" {
		return os.DirFS("src/handler/webui")
	}
	panic(fmt.Errorf("invalid build: %q", build))
}

// NewMinifier creates a minifier for the asset types served by the UI.
func NewMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("text/javascript", js.Minify)
	return m
}

// MediaType returns the media type of a file without parameters.
func MediaType(name string) string {
	mt, _, err := mime.ParseMediaType(mime.TypeByExtension(path.Ext(name)))
	if err != nil {
		return "application/octet-stream"
	}
	return mt
}
