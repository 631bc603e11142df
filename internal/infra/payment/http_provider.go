// Package payment implements the hosted payment provider boundary: session
// creation over HTTP and webhook confirmation verification via signed JWTs.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"neofidu/config"
	"neofidu/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRequestTimeout = 15 * time.Second

type httpProvider struct {
	endpoint      string
	apiKey        string
	webhookSecret string
	httpClient    *http.Client
	logger        *slog.Logger
}

// ProviderParams holds dependencies for the payment provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewHTTPProvider creates the payment provider client.
func NewHTTPProvider(params ProviderParams) (service.PaymentService, error) {
	cfg := params.Config.Payment
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("payment endpoint is required")
	}
	if cfg.WebhookSecret == "" {
		return nil, errors.New("payment webhook secret is required")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpProvider{
		endpoint:      cfg.Endpoint,
		apiKey:        cfg.APIKey,
		webhookSecret: cfg.WebhookSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: params.Logger,
	}, nil
}

// CreateSession requests a hosted payment session from the provider.
func (p *httpProvider) CreateSession(ctx context.Context, req service.PaymentRequest) (*service.PaymentSession, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal payment request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build session request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "payment provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var session service.PaymentSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session response")
	}
	if session.RedirectURL == "" {
		return nil, errors.New("payment provider returned no redirect URL")
	}

	p.logger.Info("payment session created",
		slog.String("reference", req.Reference),
		slog.String("session_id", session.SessionID),
	)

	return &session, nil
}

// VerifyConfirmation authenticates a webhook payload. The provider signs
// confirmations as HS256 JWTs over the webhook secret; anything that does
// not verify is rejected before it can touch a submission.
func (p *httpProvider) VerifyConfirmation(_ context.Context, payload string) (*service.PaymentConfirmation, error) {
	token, err := jwt.Parse(payload, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(p.webhookSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "confirmation signature invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("confirmation claims malformed")
	}

	reference, _ := claims["reference"].(string)
	transactionID, _ := claims["transaction_id"].(string)
	if reference == "" || transactionID == "" {
		return nil, errors.New("confirmation is missing reference or transaction id")
	}

	return &service.PaymentConfirmation{
		Reference:     reference,
		TransactionID: transactionID,
	}, nil
}
