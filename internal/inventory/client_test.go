package inventory_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/distrimed/order-service/internal/config"
	"github.com/distrimed/order-service/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *inventory.Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return inventory.NewClient(logger, config.Collaborator{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
}

func TestClient_CheckAvailability(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/stock/42/availability", r.URL.Path)
			assert.Equal(t, "5", r.URL.Query().Get("quantity"))

			json.NewEncoder(w).Encode(map[string]any{
				"product_id":         42,
				"sku":                "GN-100",
				"name":               "Guantes de nitrilo",
				"price":              12.5,
				"available_quantity": 30,
				"required_quantity":  5,
			})
		})

		ps, err := client.CheckAvailability(context.Background(), 42, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(42), ps.ProductID)
		assert.Equal(t, 30, ps.AvailableQuantity)
		assert.Equal(t, 5, ps.RequiredQuantity)
		assert.Equal(t, "GN-100", ps.SKU)
	})

	t.Run("product not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.CheckAvailability(context.Background(), 42, 5)
		assert.ErrorIs(t, err, inventory.ErrProductNotFound)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]any{
				"message":            "insufficient stock",
				"available_quantity": 2,
				"required_quantity":  5,
			})
		})

		_, err := client.CheckAvailability(context.Background(), 42, 5)

		var ise *inventory.InsufficientStockError
		require.ErrorAs(t, err, &ise)
		assert.Equal(t, int64(42), ise.ProductID)
		assert.Equal(t, 2, ise.Available)
		assert.Equal(t, 5, ise.Required)
	})

	t.Run("conflict with unreadable body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			io.WriteString(w, "not json")
		})

		_, err := client.CheckAvailability(context.Background(), 42, 5)

		var ise *inventory.InsufficientStockError
		require.ErrorAs(t, err, &ise)
		assert.Equal(t, 5, ise.Required)
	})
}

func TestClient_DecrementStock(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/stock/42/decrement", r.URL.Path)

			var body map[string]int
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 5, body["quantity"])

			json.NewEncoder(w).Encode(map[string]any{
				"product_id":        42,
				"previous_quantity": 30,
				"new_quantity":      25,
			})
		})

		mv, err := client.DecrementStock(context.Background(), 42, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(42), mv.ProductID)
		assert.Equal(t, 30, mv.PreviousQuantity)
		assert.Equal(t, 25, mv.NewQuantity)
	})

	t.Run("generic server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"message": "database locked"})
		})

		_, err := client.DecrementStock(context.Background(), 42, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database locked")
	})
}

func TestClient_IncrementStock(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stock/42/increment", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 5, body["quantity"])
		assert.Equal(t, "compensation", body["reason"])

		w.WriteHeader(http.StatusOK)
	})

	err := client.IncrementStock(context.Background(), 42, 5, "compensation")
	assert.NoError(t, err)
}

func TestClient_GetProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/42", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"product_id": 42,
				"name":       "Guantes de nitrilo",
				"sku":        "GN-100",
				"price":      12.5,
				"image_url":  "https://cdn.example.com/gn-100.png",
			})
		})

		p, err := client.GetProduct(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), p.ProductID)
		assert.Equal(t, "Guantes de nitrilo", p.Name)
		assert.Equal(t, "https://cdn.example.com/gn-100.png", p.ImageURL)
	})

	t.Run("unreachable service", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		client := inventory.NewClient(logger, config.Collaborator{
			BaseURL: "http://127.0.0.1:1",
			Timeout: 200 * time.Millisecond,
		})

		_, err := client.GetProduct(context.Background(), 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inventory service unreachable")
	})
}
