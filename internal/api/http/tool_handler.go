package http

import (
	"net/http"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/service"

	"github.com/gorilla/mux"
)

type ToolHandler struct {
	toolSvc service.ToolService
}

func NewToolHandler(toolSvc service.ToolService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc}
}

type toolRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
	District         string `json:"district"`
	Municipality     string `json:"municipality"`
}

func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req toolRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.PricePerDayCents <= 0 {
		writeError(w, http.StatusBadRequest, "price_per_day_cents must be positive")
		return
	}

	tool := &domain.Tool{
		OwnerID:          uid,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		PricePerDayCents: req.PricePerDayCents,
		District:         req.District,
		Municipality:     req.Municipality,
	}
	if err := h.toolSvc.AddTool(r.Context(), tool); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	tool, err := h.toolSvc.GetTool(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req toolRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tool := &domain.Tool{
		ID:               mux.Vars(r)["id"],
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		PricePerDayCents: req.PricePerDayCents,
		District:         req.District,
		Municipality:     req.Municipality,
	}
	if err := h.toolSvc.UpdateTool(r.Context(), uid, tool); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.toolSvc.DeleteTool(r.Context(), uid, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ToolHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	tools, err := h.toolSvc.ListMyTools(r.Context(), uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tools, err := h.toolSvc.SearchTools(r.Context(), q.Get("district"), q.Get("municipality"), q.Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}
