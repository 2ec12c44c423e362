package http

import (
	"net/http"

	"toolshed-backend/internal/service"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type checkoutResponse struct {
	BookingID   string `json:"booking_id"`
	CheckoutURL string `json:"checkout_url"`
}

func (h *PaymentHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	booking, url, err := h.paymentSvc.CreateCheckoutSession(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{BookingID: booking.ID, CheckoutURL: url})
}

func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	booking, err := h.paymentSvc.ConfirmPayment(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *PaymentHandler) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	status, err := h.paymentSvc.PaymentStatus(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"payment_status": string(status)})
}

func (h *PaymentHandler) CreateDepositCheckout(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	booking, url, err := h.paymentSvc.CreateDepositCheckoutSession(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{BookingID: booking.ID, CheckoutURL: url})
}

func (h *PaymentHandler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	booking, err := h.paymentSvc.ConfirmDepositPayment(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}
