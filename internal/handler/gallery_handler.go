package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"
)

// allowedImageExtensions is the gallery extension allow-list.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// GalleryHandler lists the photo gallery directory.
type GalleryHandler struct {
	dir       string
	urlPrefix string
}

// NewGalleryHandler creates a GalleryHandler serving image URLs under
// urlPrefix for files found in dir.
func NewGalleryHandler(dir, urlPrefix string) *GalleryHandler {
	return &GalleryHandler{dir: dir, urlPrefix: urlPrefix}
}

// galleryResponse is the JSON response for GET /api/gallery-images.
type galleryResponse struct {
	Success bool     `json:"success"`
	Images  []string `json:"images"`
}

// List handles GET /api/gallery-images. Pure filesystem enumeration; the
// files themselves are served by the static file server.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		slog.Error("gallery directory read failed", "dir", h.dir, "error", err)
		respond(w, http.StatusInternalServerError, false, "Could not load gallery images.")
		return
	}

	images := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		if allowedImageExtensions[ext] {
			images = append(images, h.urlPrefix+"/"+e.Name())
		}
	}
	sort.Strings(images)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(galleryResponse{Success: true, Images: images})
}
