// Package service declares the outbound boundaries the intake core calls
// into: payment, document storage, notification and event publishing. The
// core decides when to call them, never how they render or settle.
package service

import "context"

// PaymentRequest is everything the payment boundary receives: reference,
// amount, currency and a contact for the payment page. No other data
// crosses the boundary.
type PaymentRequest struct {
	Reference       string `json:"reference"`
	AmountCentimes  int64  `json:"amount_centimes"`
	Currency        string `json:"currency"`
	CustomerContact string `json:"customer_contact"`
}

// PaymentSession is the provider-hosted session the client is redirected to.
type PaymentSession struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentConfirmation is the single asynchronous signal consumed by the
// core: an opaque transaction id tied to a reference.
type PaymentConfirmation struct {
	Reference     string `json:"reference"`
	TransactionID string `json:"transaction_id"`
}

// PaymentService is the out-of-scope payment provider boundary.
type PaymentService interface {
	// CreateSession requests a hosted payment session for the submission.
	CreateSession(ctx context.Context, req PaymentRequest) (*PaymentSession, error)

	// VerifyConfirmation authenticates a raw confirmation payload from the
	// provider webhook and extracts the confirmation signal.
	VerifyConfirmation(ctx context.Context, payload string) (*PaymentConfirmation, error)
}
