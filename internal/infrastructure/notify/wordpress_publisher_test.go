package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bizdir_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordPressPublisher_PublishCompletedListing(t *testing.T) {
	var received listingPayload
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, registerPath, r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	p := NewWordPressPublisher(WordPressConfig{URL: server.URL, APIKey: "wp-key", HTTPTimeout: 5 * time.Second})

	order := entities.Order{
		MerchOrderID:  "ORDER-1",
		Title:         "Addis Coffee House",
		Amount:        decimal.NewFromInt(500),
		Status:        entities.OrderStatusCompleted,
		TransactionID: "TX1",
	}
	require.NoError(t, p.PublishCompletedListing(context.Background(), order))

	assert.Equal(t, "Bearer wp-key", authHeader)
	assert.Equal(t, "Addis Coffee House", received.Title)
	assert.Equal(t, "completed", received.Meta["payment_status"])
	assert.Equal(t, "TX1", received.Meta["payment_id"])
	assert.Equal(t, "ORDER-1", received.Meta["order_id"])
}

func TestWordPressPublisher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	p := NewWordPressPublisher(WordPressConfig{URL: server.URL, APIKey: "bad", HTTPTimeout: 5 * time.Second})
	err := p.PublishCompletedListing(context.Background(), entities.Order{MerchOrderID: "ORDER-1"})
	require.Error(t, err)
}
