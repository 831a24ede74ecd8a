package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorNotifierRequiresSettings(t *testing.T) {
	_, err := NewErrorNotifier("", "from@example.com", []string{"me@example.com"})
	assert.Error(t, err)
	_, err = NewErrorNotifier("key", "", []string{"me@example.com"})
	assert.Error(t, err)
	_, err = NewErrorNotifier("key", "from@example.com", nil)
	assert.Error(t, err)
}

func TestErrorNotifierSendEmail(t *testing.T) {
	var got ResendEmailRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(ResendEmailResponse{ID: "email-1"})
	}))
	defer server.Close()

	n, err := NewErrorNotifier("re_key", "site@example.com", []string{"me@example.com"})
	require.NoError(t, err)
	n.endpoint = server.URL

	require.NoError(t, n.SendEmail(context.Background(), "subject", "<p>body</p>"))
	assert.Equal(t, "Bearer re_key", auth)
	assert.Equal(t, "site@example.com", got.From)
	assert.Equal(t, []string{"me@example.com"}, got.To)
	assert.Equal(t, "subject", got.Subject)
}

func TestErrorNotifierSendEmailAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(ResendErrorResponse{Message: "invalid from address"})
	}))
	defer server.Close()

	n, err := NewErrorNotifier("re_key", "bad", []string{"me@example.com"})
	require.NoError(t, err)
	n.endpoint = server.URL

	err = n.SendEmail(context.Background(), "s", "b")
	assert.ErrorContains(t, err, "invalid from address")
}

func TestErrorNotifierNotifyErrorSendsInBackground(t *testing.T) {
	received := make(chan ResendEmailRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ResendEmailRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		received <- req
		_ = json.NewEncoder(w).Encode(ResendEmailResponse{ID: "x"})
	}))
	defer server.Close()

	n, err := NewErrorNotifier("re_key", "site@example.com", []string{"me@example.com"})
	require.NoError(t, err)
	n.endpoint = server.URL

	n.NotifyError("GET", "/api/projects", errors.New("db <down>"))

	select {
	case req := <-received:
		assert.Equal(t, "[portfolio] 500 on GET /api/projects", req.Subject)
		assert.Contains(t, req.Html, "db &lt;down&gt;")
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not sent")
	}
}
