package http

import (
	"net/http"

	"toolshed-backend/internal/georef"
	"toolshed-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all REST endpoints under /api/v1.
func NewRouter(
	bookingSvc service.BookingService,
	paymentSvc service.PaymentService,
	reviewSvc service.ReviewService,
	toolSvc service.ToolService,
	payoutSvc service.PayoutService,
	userSvc service.UserService,
	reportSvc service.ReportService,
	adminSvc service.AdminService,
	geoCache *georef.Cache,
) *mux.Router {
	bookings := NewBookingHandler(bookingSvc)
	payments := NewPaymentHandler(paymentSvc)
	reviews := NewReviewHandler(reviewSvc)
	tools := NewToolHandler(toolSvc)
	payouts := NewPayoutHandler(payoutSvc)
	users := NewUserHandler(userSvc)
	reports := NewReportHandler(reportSvc)
	admin := NewAdminHandler(adminSvc)
	geo := NewGeoHandler(geoCache)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api.HandleFunc("/tools", tools.Create).Methods("POST")
	api.HandleFunc("/tools", tools.Search).Methods("GET")
	api.HandleFunc("/tools/mine", tools.ListMine).Methods("GET")
	api.HandleFunc("/tools/{id}", tools.Get).Methods("GET")
	api.HandleFunc("/tools/{id}", tools.Update).Methods("PUT")
	api.HandleFunc("/tools/{id}", tools.Delete).Methods("DELETE")
	api.HandleFunc("/tools/{id}/reviews", reviews.ListByTool).Methods("GET")
	api.HandleFunc("/tools/{id}/bookings", bookings.ListByTool).Methods("GET")

	api.HandleFunc("/bookings", bookings.Create).Methods("POST")
	api.HandleFunc("/bookings", bookings.ListMine).Methods("GET")
	api.HandleFunc("/bookings/earnings", bookings.Earnings).Methods("GET")
	api.HandleFunc("/bookings/{id}", bookings.Get).Methods("GET")
	api.HandleFunc("/bookings/{id}/approve", bookings.Approve).Methods("POST")
	api.HandleFunc("/bookings/{id}/reject", bookings.Reject).Methods("POST")
	api.HandleFunc("/bookings/{id}/cancel", bookings.Cancel).Methods("POST")
	api.HandleFunc("/bookings/{id}/refund-estimate", bookings.RefundEstimate).Methods("GET")
	api.HandleFunc("/bookings/{id}/condition-report", bookings.SubmitConditionReport).Methods("POST")

	api.HandleFunc("/bookings/{id}/checkout", payments.CreateCheckout).Methods("POST")
	api.HandleFunc("/bookings/{id}/payment", payments.GetPaymentStatus).Methods("GET")
	api.HandleFunc("/bookings/{id}/payment/confirm", payments.ConfirmPayment).Methods("POST")
	api.HandleFunc("/bookings/{id}/deposit/checkout", payments.CreateDepositCheckout).Methods("POST")
	api.HandleFunc("/bookings/{id}/deposit/confirm", payments.ConfirmDeposit).Methods("POST")

	api.HandleFunc("/reviews", reviews.Create).Methods("POST")
	api.HandleFunc("/reviews/{id}", reviews.Update).Methods("PUT")
	api.HandleFunc("/reviews/{id}", reviews.Delete).Methods("DELETE")

	api.HandleFunc("/payouts", payouts.Request).Methods("POST")
	api.HandleFunc("/payouts", payouts.List).Methods("GET")

	api.HandleFunc("/users/me", users.Me).Methods("GET")
	api.HandleFunc("/users/me/subscription", users.UpdateSubscription).Methods("PUT")

	api.HandleFunc("/reports", reports.Create).Methods("POST")
	api.HandleFunc("/admin/reports", reports.List).Methods("GET")
	api.HandleFunc("/admin/reports/{id}/resolve", reports.Resolve).Methods("POST")
	api.HandleFunc("/admin/reports/{id}/dismiss", reports.Dismiss).Methods("POST")
	api.HandleFunc("/admin/users", admin.ListUsers).Methods("GET")
	api.HandleFunc("/admin/stats", admin.Stats).Methods("GET")

	api.HandleFunc("/geo/districts", geo.Districts).Methods("GET")
	api.HandleFunc("/geo/districts/{district}/municipalities", geo.Municipalities).Methods("GET")

	return r
}
