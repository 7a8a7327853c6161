package http

import (
	"context"
	"database/sql"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nfnt/resize"

	"github.com/ebazhanova/CoffeeToGo/internal/models"
)

// CatalogService defines the catalog operations required by the handlers.
type CatalogService interface {
	Coffees(ctx context.Context) ([]models.Coffee, error)
	CoffeeTypes(ctx context.Context) ([]models.CoffeeType, error)
	CoffeeByName(ctx context.Context, name string) (*models.Coffee, error)
}

// CatalogHandler handles catalog and coffee-image requests.
type CatalogHandler struct {
	// CatalogService performs the underlying catalog reads.
	CatalogService CatalogService
	// ImagesDir is the directory coffee images are read from.
	ImagesDir string
}

// List handles GET /api/coffee and returns the full catalog.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	coffees, err := h.CatalogService.Coffees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if coffees == nil {
		coffees = []models.Coffee{}
	}
	writeJSON(w, http.StatusOK, coffees)
}

// Types handles GET /api/coffee/types and returns the categories.
func (h *CatalogHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.CatalogService.CoffeeTypes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if types == nil {
		types = []models.CoffeeType{}
	}
	writeJSON(w, http.StatusOK, types)
}

// Image handles GET /api/coffee/image?name=...&width=...
// It serves the named coffee's image, downscaled to the requested width
// while preserving the aspect ratio. Only catalog coffees are served, so a
// request can never reach outside the images directory.
func (h *CatalogHandler) Image(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" || strings.ContainsAny(name, "/\\") {
		writeError(w, http.StatusBadRequest, "coffee name is required")
		return
	}

	if _, err := h.CatalogService.CoffeeByName(r.Context(), name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "coffee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	img, err := h.loadImage(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}

	if widthStr := r.URL.Query().Get("width"); widthStr != "" {
		width, err := strconv.Atoi(widthStr)
		if err != nil || width < 1 {
			writeError(w, http.StatusBadRequest, "invalid width")
			return
		}
		img = resize.Resize(uint(width), 0, img, resize.Lanczos3)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	_ = jpeg.Encode(w, img, &jpeg.Options{Quality: 80})
}

// loadImage decodes the coffee's image file, trying jpg then png.
func (h *CatalogHandler) loadImage(name string) (image.Image, error) {
	if f, err := os.Open(filepath.Join(h.ImagesDir, name+".jpg")); err == nil {
		defer f.Close()
		return jpeg.Decode(f)
	}
	f, err := os.Open(filepath.Join(h.ImagesDir, name+".png"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
