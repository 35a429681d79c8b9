package entities_test

import (
	"testing"

	"github.com/distrimed/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() entities.Order {
	return entities.Order{
		OrderNumber: "PED-20260828-00042",
		ClientID:    "0f8fad5b-d9cb-469f-a165-70867728950e",
		Status:      entities.StatusEnPreparacion,
		TotalAmount: 150.5,
		Items: []entities.OrderItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
		},
	}
}

func TestOrder_Validate(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		o := validOrder()
		assert.NoError(t, o.Validate())
	})

	t.Run("vendor instead of client", func(t *testing.T) {
		o := validOrder()
		o.ClientID = ""
		o.VendorID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
		assert.NoError(t, o.Validate())
	})

	testCases := []struct {
		name    string
		mutate  func(o *entities.Order)
		wantMsg string
	}{
		{
			name:    "missing prefix",
			mutate:  func(o *entities.Order) { o.OrderNumber = "ORD-20260828-00042" },
			wantMsg: `invalid order number "ORD-20260828-00042", want PED-YYYYMMDD-NNNNN`,
		},
		{
			name:    "short sequence",
			mutate:  func(o *entities.Order) { o.OrderNumber = "PED-20260828-042" },
			wantMsg: `invalid order number "PED-20260828-042", want PED-YYYYMMDD-NNNNN`,
		},
		{
			name:    "date segment is not a calendar date",
			mutate:  func(o *entities.Order) { o.OrderNumber = "PED-20261345-00042" },
			wantMsg: `order number "PED-20261345-00042" does not contain a valid date`,
		},
		{
			name: "neither client nor vendor",
			mutate: func(o *entities.Order) {
				o.ClientID = ""
				o.VendorID = ""
			},
			wantMsg: "order must belong to a client or a vendor",
		},
		{
			name:    "malformed client uuid",
			mutate:  func(o *entities.Order) { o.ClientID = "not-a-uuid" },
			wantMsg: `client_id "not-a-uuid" is not a valid UUID`,
		},
		{
			name: "malformed vendor uuid",
			mutate: func(o *entities.Order) {
				o.ClientID = ""
				o.VendorID = "12345"
			},
			wantMsg: `vendor_id "12345" is not a valid UUID`,
		},
		{
			name:    "unknown status",
			mutate:  func(o *entities.Order) { o.Status = "Perdido" },
			wantMsg: `unknown order status "Perdido"`,
		},
		{
			name: "non positive item quantity",
			mutate: func(o *entities.Order) {
				o.Items[1].Quantity = 0
			},
			wantMsg: "item quantity must be positive, got 0",
		},
		{
			name: "non positive product id",
			mutate: func(o *entities.Order) {
				o.Items[0].ProductID = -1
			},
			wantMsg: "item product_id must be positive, got -1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := validOrder()
			tc.mutate(&o)

			err := o.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, err.Error())

			var ve *entities.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []entities.Status{
		entities.StatusRecibido,
		entities.StatusEnPreparacion,
		entities.StatusEnTransito,
		entities.StatusEntregado,
		entities.StatusDevuelto,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, entities.Status("Cancelado").Valid())
	assert.False(t, entities.Status("").Valid())
}

func TestOrder_GobRoundTrip(t *testing.T) {
	o := validOrder()

	data, err := o.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, o, got)
}
