// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"embed"
	"html/template"

	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

// NewRender compiles the embedded page templates.
func NewRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"ordinal": ordinal,
			},
		},
	})
}

// message is the binding for the generic status page
type message struct {
	Title   string
	Message string
}

func ordinal(i int) int {
	return i + 1
}
