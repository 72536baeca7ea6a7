package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// StaticHandler serves the built frontend for non-API paths.
// Unknown paths fall back to index.html so client-side routing works.
// When no directory is configured it degrades to a JSON 404.
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a StaticHandler rooted at dir.
// An empty dir disables file serving.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// Serve handles all paths not claimed by the API.
func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	// Unmatched /api paths stay JSON 404s; the frontend only owns the rest.
	if h.dir == "" || strings.HasPrefix(r.URL.Path, "/api") {
		NotFound(w, r)
		return
	}

	// Reject path traversal before touching the filesystem.
	cleaned := filepath.Clean(r.URL.Path)
	if strings.Contains(cleaned, "..") {
		NotFound(w, r)
		return
	}

	path := filepath.Join(h.dir, cleaned)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}
