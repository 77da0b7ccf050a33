package web

import (
	"io/fs"
	"net/http"
)

// StaticServer serves files from dir within fsys under the URL prefix.
func StaticServer(fsys fs.FS, dir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub))).ServeHTTP
}
