package http

import (
	"net/http"

	"toolshed-backend/internal/service"
)

type PayoutHandler struct {
	payoutSvc service.PayoutService
}

func NewPayoutHandler(payoutSvc service.PayoutService) *PayoutHandler {
	return &PayoutHandler{payoutSvc: payoutSvc}
}

type requestPayoutRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

func (h *PayoutHandler) Request(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req requestPayoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	payout, err := h.payoutSvc.RequestPayout(r.Context(), uid, req.AmountCents)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payout)
}

func (h *PayoutHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	payouts, err := h.payoutSvc.ListPayouts(r.Context(), uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payouts)
}
