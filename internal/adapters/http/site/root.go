// Package site handles the embedded signup web UI.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded web UI routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the embedded UI assets under /static/
	files := http.StripPrefix("/static/", http.FileServer(FS()))
	mux.Handle("/static/", files)

	mux.HandleFunc("/", handleRoot)
}

// handleRoot redirects / to the UI index page. The pattern also catches
// every path no other route claimed, which is a plain 404.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
