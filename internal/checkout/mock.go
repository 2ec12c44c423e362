package checkout

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// MockProvider simulates a hosted checkout page for demo/testing without a
// real payment processor. The session URL points at the configured success
// page so the payment flow can be exercised end to end.
type MockProvider struct {
	successURL string
	cancelURL  string
}

// NewMockProvider creates a mock checkout provider.
func NewMockProvider(successURL, cancelURL string) *MockProvider {
	return &MockProvider{
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (m *MockProvider) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	if req.BookingID == "" {
		return nil, fmt.Errorf("booking id is required")
	}
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d", req.AmountCents)
	}

	sessionID := uuid.NewString()
	checkoutURL := fmt.Sprintf("%s?bookingId=%s&session=%s",
		m.successURL, url.QueryEscape(req.BookingID), sessionID)

	return &Session{
		ID:          sessionID,
		CheckoutURL: checkoutURL,
	}, nil
}
