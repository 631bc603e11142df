package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"neofidu/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "test-webhook-secret"

func newTestProvider(endpoint string) *httpProvider {
	return &httpProvider{
		endpoint:      endpoint,
		apiKey:        "test-api-key",
		webhookSecret: testWebhookSecret,
		httpClient:    &http.Client{Timeout: 5 * time.Second},
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func signConfirmation(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestCreateSession_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var req service.PaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "NF-2026-AAAA1111", req.Reference)

		json.NewEncoder(w).Encode(service.PaymentSession{
			SessionID:   "sess_123",
			RedirectURL: "https://pay.example.com/sess_123",
		})
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)

	session, err := provider.CreateSession(context.Background(), service.PaymentRequest{
		Reference:       "NF-2026-AAAA1111",
		AmountCentimes:  9000,
		Currency:        "CHF",
		CustomerContact: "client@example.ch",
	})
	require.NoError(t, err)
	assert.Equal(t, "sess_123", session.SessionID)
	assert.Equal(t, "https://pay.example.com/sess_123", session.RedirectURL)
}

func TestCreateSession_ProviderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)

	_, err := provider.CreateSession(context.Background(), service.PaymentRequest{Reference: "NF-2026-AAAA1111"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCreateSession_MissingRedirectURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(service.PaymentSession{SessionID: "sess_123"})
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)

	_, err := provider.CreateSession(context.Background(), service.PaymentRequest{Reference: "NF-2026-AAAA1111"})
	require.Error(t, err)
}

func TestVerifyConfirmation_ValidSignature(t *testing.T) {
	provider := newTestProvider("http://unused")

	payload := signConfirmation(t, testWebhookSecret, jwt.MapClaims{
		"reference":      "NF-2026-AAAA1111",
		"transaction_id": "txn_789",
	})

	confirmation, err := provider.VerifyConfirmation(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "NF-2026-AAAA1111", confirmation.Reference)
	assert.Equal(t, "txn_789", confirmation.TransactionID)
}

func TestVerifyConfirmation_WrongSecret(t *testing.T) {
	provider := newTestProvider("http://unused")

	payload := signConfirmation(t, "some-other-secret", jwt.MapClaims{
		"reference":      "NF-2026-AAAA1111",
		"transaction_id": "txn_789",
	})

	_, err := provider.VerifyConfirmation(context.Background(), payload)
	require.Error(t, err)
}

func TestVerifyConfirmation_MissingClaims(t *testing.T) {
	provider := newTestProvider("http://unused")

	payload := signConfirmation(t, testWebhookSecret, jwt.MapClaims{
		"reference": "NF-2026-AAAA1111",
	})

	_, err := provider.VerifyConfirmation(context.Background(), payload)
	require.Error(t, err)
}

func TestVerifyConfirmation_Garbage(t *testing.T) {
	provider := newTestProvider("http://unused")

	_, err := provider.VerifyConfirmation(context.Background(), "not-a-jwt")
	require.Error(t, err)
}
