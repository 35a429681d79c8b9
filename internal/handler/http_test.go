package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/distrimed/order-service/internal/entities"
	"github.com/distrimed/order-service/internal/handler"
	mocks "github.com/distrimed/order-service/internal/handler/mocks"
	"github.com/distrimed/order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*mocks.MockOrderService, chi.Router) {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	handler.NewHTTPHandler(logger, svc).Init(r)
	return svc, r
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	const clientID = "0f8fad5b-d9cb-469f-a165-70867728950e"

	validBody := `{
		"client_id": "` + clientID + `",
		"items": [{"product_id": 1, "quantity": 2}],
		"total_amount": 150.5,
		"scheduled_delivery_date": "2026-08-30"
	}`

	createdOrder := entities.Order{
		ID:          1,
		OrderNumber: "PED-20260828-00042",
		ClientID:    clientID,
		Status:      entities.StatusEnPreparacion,
		TotalAmount: 150.5,
		Items:       []entities.OrderItem{{ProductID: 1, Quantity: 2}},
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.AnythingOfType("service.CreateOrderRequest")).
					Return(createdOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_number":"PED-20260828-00042"`,
		},
		{
			name:         "malformed json",
			body:         `{"client_id":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "validation failure",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.NewValidationError("total_amount must be greater than zero")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"total_amount must be greater than zero"`,
		},
		{
			name: "stock failure",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.NewBusinessError(nil, "product 1 unavailable: available 0, required 2")).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"product 1 unavailable: available 0, required 2"`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestHandler(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrderByNumber(t *testing.T) {
	validOrder := entities.Order{
		OrderNumber: "PED-20260828-00042",
		ClientID:    "0f8fad5b-d9cb-469f-a165-70867728950e",
		Status:      entities.StatusEnPreparacion,
	}

	testCases := []struct {
		name         string
		orderNumber  string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:        "success",
			orderNumber: "PED-20260828-00042",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByNumber(mock.Anything, "PED-20260828-00042").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"PED-20260828-00042"`,
		},
		{
			name:        "not found",
			orderNumber: "PED-20260828-99999",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByNumber(mock.Anything, "PED-20260828-99999").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:        "internal error",
			orderNumber: "PED-20260828-00042",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByNumber(mock.Anything, "PED-20260828-00042").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestHandler(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderNumber, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	const clientID = "0f8fad5b-d9cb-469f-a165-70867728950e"

	listing := service.OrderListing{
		Orders: []entities.Order{
			{
				OrderNumber: "PED-20260828-00042",
				ClientID:    clientID,
				Status:      entities.StatusEntregado,
				Items:       []entities.OrderItem{{ProductID: 1, Quantity: 2}},
			},
		},
		Products: map[int64]entities.Product{
			1: {ProductID: 1, Name: "Guantes de nitrilo", SKU: "GN-100"},
		},
	}

	t.Run("success with enrichment", func(t *testing.T) {
		svc, r := newTestHandler(t)
		svc.EXPECT().ListOrders(mock.Anything, clientID).Return(listing, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders?client_id="+clientID, nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		res := rr.Result()
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var orders []map[string]any
		require.NoError(t, json.Unmarshal(body, &orders))
		require.Len(t, orders, 1)
		assert.Contains(t, string(body), `"name":"Guantes de nitrilo"`)
	})

	t.Run("missing client_id", func(t *testing.T) {
		svc, r := newTestHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything)
	})

	t.Run("client_id is not a uuid", func(t *testing.T) {
		svc, r := newTestHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/orders?client_id=42", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything)
	})

	t.Run("internal error", func(t *testing.T) {
		svc, r := newTestHandler(t)
		svc.EXPECT().ListOrders(mock.Anything, clientID).
			Return(service.OrderListing{}, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders?client_id="+clientID, nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestHTTPHandler_GetSellerReport(t *testing.T) {
	const sellerID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	report := service.SellerReport{
		SellerID:    sellerID,
		ClientCount: 2,
		StatusCounts: map[entities.Status]int{
			entities.StatusEnPreparacion: 3,
			entities.StatusEntregado:     7,
		},
	}

	t.Run("success", func(t *testing.T) {
		svc, r := newTestHandler(t)
		svc.EXPECT().GetSellerReport(mock.Anything, sellerID).Return(report, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/reports/sellers/"+sellerID, nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		res := rr.Result()
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, sellerID, resp["seller_id"])
		assert.EqualValues(t, 2, resp["client_count"])
		assert.Contains(t, string(body), `"Entregado":7`)
	})

	t.Run("internal error", func(t *testing.T) {
		svc, r := newTestHandler(t)
		svc.EXPECT().GetSellerReport(mock.Anything, sellerID).
			Return(service.SellerReport{}, errors.New("auth service down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/reports/sellers/"+sellerID, nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
