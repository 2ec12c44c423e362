package http

import (
	"net/http"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

type createReviewRequest struct {
	BookingID string `json:"booking_id"`
	Type      string `json:"type"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req createReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := h.reviewSvc.CreateReview(r.Context(), uid, req.BookingID,
		domain.ReviewType(req.Type), req.Rating, req.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

type updateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req updateReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := h.reviewSvc.UpdateReview(r.Context(), uid, mux.Vars(r)["id"], req.Rating, req.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := h.reviewSvc.DeleteReview(r.Context(), uid, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReviewHandler) ListByTool(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewSvc.ListToolReviews(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
