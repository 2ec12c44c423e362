// Package checkout abstracts the hosted payment provider. The application
// only ever creates sessions and redirects the renter to the returned URL;
// payment capture and refunds happen on the provider's side.
package checkout

import "context"

// SessionRequest describes one payment to collect.
type SessionRequest struct {
	BookingID   string
	AmountCents int64
	Description string
}

// Session is a hosted checkout session the renter is redirected to.
type Session struct {
	ID          string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// Provider creates hosted checkout sessions.
// Supports both the mock provider and a real processor (Stripe, etc.).
type Provider interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
}
