package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-admin-keeper/internal/config"
	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier_DeliversPayload(t *testing.T) {
	var received ResetCodeMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(config.Notify{WebhookURL: srv.URL, Timeout: time.Second}, logger.Nop())

	err := n.SendResetCode(context.Background(), ResetCodeMessage{
		Name:  "Budi",
		Email: "budi@example.com",
		Token: "0191-reset-token",
	})

	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", received.Email)
	assert.Equal(t, "0191-reset-token", received.Token)
}

func TestWebhookNotifier_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(config.Notify{WebhookURL: srv.URL, Timeout: time.Second}, logger.Nop())

	err := n.SendResetCode(context.Background(), ResetCodeMessage{Email: "budi@example.com"})

	require.Error(t, err)
}

func TestNewWebhookNotifier_NoURLFallsBackToNop(t *testing.T) {
	n := NewWebhookNotifier(config.Notify{}, logger.Nop())

	_, isNop := n.(NopNotifier)
	assert.True(t, isNop)
	assert.NoError(t, n.SendResetCode(context.Background(), ResetCodeMessage{}))
}
