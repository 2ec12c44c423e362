package http

import (
	"net/http"

	"toolshed-backend/internal/georef"

	"github.com/gorilla/mux"
)

// GeoHandler serves the cached Portuguese administrative reference data used
// by location pickers. Responses are always 200 with a list; upstream
// failures surface as an empty list rather than an error.
type GeoHandler struct {
	cache *georef.Cache
}

func NewGeoHandler(cache *georef.Cache) *GeoHandler {
	return &GeoHandler{cache: cache}
}

func (h *GeoHandler) Districts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.Districts(r.Context()))
}

func (h *GeoHandler) Municipalities(w http.ResponseWriter, r *http.Request) {
	district := mux.Vars(r)["district"]
	writeJSON(w, http.StatusOK, h.cache.Municipalities(r.Context(), district))
}
