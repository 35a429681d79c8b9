package service

import (
	"testing"
	"time"

	"github.com/distrimed/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateOrder(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	clientID := "0f8fad5b-d9cb-469f-a165-70867728950e"
	total := 99.9

	valid := func() CreateOrderRequest {
		delivery := "2026-08-30"
		return CreateOrderRequest{
			ClientID:    &clientID,
			TotalAmount: &total,
			Items: []CreateOrderItem{
				{ProductID: ptr(int64(10)), Quantity: ptr(1)},
			},
			ScheduledDeliveryDate: &delivery,
		}
	}

	t.Run("valid request", func(t *testing.T) {
		v, err := validateCreateOrder(valid(), now)
		require.NoError(t, err)
		assert.Equal(t, clientID, v.clientID)
		assert.Equal(t, 99.9, v.totalAmount)
		require.Len(t, v.items, 1)
		assert.Equal(t, entities.OrderItem{ProductID: 10, Quantity: 1}, v.items[0])
	})

	t.Run("today with time of day is accepted", func(t *testing.T) {
		req := valid()
		delivery := "2026-08-28T08:00:00Z"
		req.ScheduledDeliveryDate = &delivery

		_, err := validateCreateOrder(req, now)
		assert.NoError(t, err)
	})

	t.Run("one day before today is rejected", func(t *testing.T) {
		req := valid()
		delivery := "2026-08-27T23:59:59Z"
		req.ScheduledDeliveryDate = &delivery

		_, err := validateCreateOrder(req, now)
		require.Error(t, err)
		assert.Equal(t, "scheduled_delivery_date cannot be in the past", err.Error())
	})

	t.Run("first violation wins", func(t *testing.T) {
		// both the client/vendor and the items checks would fail; only the
		// first one is reported
		req := valid()
		req.ClientID = nil
		req.Items = nil

		_, err := validateCreateOrder(req, now)
		require.Error(t, err)
		assert.Equal(t, "either client_id or vendor_id is required", err.Error())
	})

	t.Run("check order is fixed", func(t *testing.T) {
		steps := []struct {
			mutate  func(req *CreateOrderRequest)
			wantMsg string
		}{
			{
				mutate:  func(req *CreateOrderRequest) { req.Items = []CreateOrderItem{} },
				wantMsg: "items must be a non-empty list",
			},
			{
				mutate:  func(req *CreateOrderRequest) { req.TotalAmount = ptr(0.0) },
				wantMsg: "total_amount must be greater than zero",
			},
			{
				mutate:  func(req *CreateOrderRequest) { req.TotalAmount = ptr(-5.0) },
				wantMsg: "total_amount must be greater than zero",
			},
			{
				mutate:  func(req *CreateOrderRequest) { req.ScheduledDeliveryDate = nil },
				wantMsg: "scheduled_delivery_date is required",
			},
			{
				mutate:  func(req *CreateOrderRequest) { req.ScheduledDeliveryDate = ptr("next tuesday") },
				wantMsg: `scheduled_delivery_date "next tuesday" is not a valid ISO-8601 date`,
			},
			{
				mutate: func(req *CreateOrderRequest) {
					req.Items = []CreateOrderItem{
						{ProductID: ptr(int64(10)), Quantity: ptr(1)},
						{ProductID: nil, Quantity: ptr(1)},
					}
				},
				wantMsg: "item 2: product_id is required",
			},
			{
				mutate: func(req *CreateOrderRequest) {
					req.Items = []CreateOrderItem{
						{ProductID: ptr(int64(10)), Quantity: ptr(0)},
					}
				},
				wantMsg: "item 1: quantity must be greater than zero",
			},
		}

		for _, step := range steps {
			req := valid()
			step.mutate(&req)

			_, err := validateCreateOrder(req, now)
			require.Error(t, err)
			assert.Equal(t, step.wantMsg, err.Error())

			var ve *entities.ValidationError
			assert.ErrorAs(t, err, &ve)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		req := valid()
		itemsBefore := make([]CreateOrderItem, len(req.Items))
		copy(itemsBefore, req.Items)

		_, err := validateCreateOrder(req, now)
		require.NoError(t, err)
		assert.Equal(t, itemsBefore, req.Items)
	})
}

func ptr[T any](v T) *T { return &v }
