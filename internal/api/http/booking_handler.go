package http

import (
	"net/http"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	ToolID    string `json:"tool_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	renterID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req createBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ToolID == "" {
		writeError(w, http.StatusBadRequest, "tool_id is required")
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), renterID, req.ToolID, req.StartDate, req.EndDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	booking, err := h.bookingSvc.GetBooking(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var (
		bookings []domain.Booking
		err      error
	)
	if r.URL.Query().Get("role") == "owner" {
		bookings, err = h.bookingSvc.ListOwnerBookings(r.Context(), uid)
	} else {
		bookings, err = h.bookingSvc.ListRenterBookings(r.Context(), uid)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListByTool(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListToolBookings(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	booking, err := h.bookingSvc.ApproveBooking(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	booking, err := h.bookingSvc.RejectBooking(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type cancelBookingResponse struct {
	Booking          *domain.Booking `json:"booking"`
	RefundPercentage int             `json:"refund_percentage"`
	RefundCents      int64           `json:"refund_cents"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	booking, estimate, err := h.bookingSvc.CancelBooking(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cancelBookingResponse{
		Booking:          booking,
		RefundPercentage: estimate.Percentage,
		RefundCents:      estimate.AmountCents,
	})
}

func (h *BookingHandler) RefundEstimate(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	estimate, err := h.bookingSvc.EstimateRefund(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, estimate)
}

type conditionReportRequest struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (h *BookingHandler) SubmitConditionReport(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req conditionReportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	booking, err := h.bookingSvc.SubmitConditionReport(r.Context(), uid, mux.Vars(r)["id"],
		domain.ConditionStatus(req.Status), req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	summary, err := h.bookingSvc.OwnerEarnings(r.Context(), uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
