// Package web renders navigation views. Views are html/template units parsed
// once at startup; layouts expose a <router-view> slot that receives the
// rendered child view. A LayoutSet wraps composed views in a page shell.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// PageData contains the data passed to shell layouts during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	History  string
	Location string
	Route    string
	Links    map[string]string
	Content  template.HTML
}

// LayoutSet holds pre-parsed shell layouts.
// Layouts are parsed once at startup, avoiding per-request overhead.
type LayoutSet struct {
	layouts  *template.Template
	basePath string
}

// NewLayoutSet parses every layout matching glob in fsys.
// Parsing at startup surfaces template errors before the first request.
func NewLayoutSet(fsys fs.FS, glob, basePath string) (*LayoutSet, error) {
	layouts, err := template.ParseFS(fsys, glob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	return &LayoutSet{
		layouts:  layouts,
		basePath: basePath,
	}, nil
}

// Render executes the named layout with data and writes it with status.
// The BasePath of data is filled in when empty.
func (ls *LayoutSet) Render(w http.ResponseWriter, status int, layout string, data PageData) error {
	t := ls.layouts.Lookup(layout)
	if t == nil {
		return fmt.Errorf("layout not found: %s", layout)
	}
	if data.BasePath == "" {
		data.BasePath = ls.basePath
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return t.Execute(w, data)
}
