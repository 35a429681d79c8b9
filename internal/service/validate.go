package service

import (
	"time"

	"github.com/distrimed/order-service/internal/entities"
)

// CreateOrderRequest is the inbound shape of the create operation. Pointer
// fields distinguish an absent value from a zero one.
type CreateOrderRequest struct {
	ClientID              *string
	VendorID              *string
	Items                 []CreateOrderItem
	TotalAmount           *float64
	ScheduledDeliveryDate *string
	AssignedTruck         string
}

type CreateOrderItem struct {
	ProductID *int64
	Quantity  *int
}

type validatedRequest struct {
	clientID          string
	vendorID          string
	items             []entities.OrderItem
	totalAmount       float64
	scheduledDelivery time.Time
	assignedTruck     string
}

// validateCreateOrder runs the request checks in a fixed order and reports
// only the first violation. Item errors carry the 1-based submission index.
// validator/v10 struct tags cannot express this ordering contract, so the
// checks are explicit.
func validateCreateOrder(req CreateOrderRequest, now time.Time) (validatedRequest, error) {
	var v validatedRequest

	if strPtrEmpty(req.ClientID) && strPtrEmpty(req.VendorID) {
		return v, entities.NewValidationError("either client_id or vendor_id is required")
	}

	if len(req.Items) == 0 {
		return v, entities.NewValidationError("items must be a non-empty list")
	}

	if req.TotalAmount == nil {
		return v, entities.NewValidationError("total_amount is required")
	}
	if *req.TotalAmount <= 0 {
		return v, entities.NewValidationError("total_amount must be greater than zero")
	}

	if strPtrEmpty(req.ScheduledDeliveryDate) {
		return v, entities.NewValidationError("scheduled_delivery_date is required")
	}
	delivery, err := parseDeliveryDate(*req.ScheduledDeliveryDate)
	if err != nil {
		return v, entities.NewValidationError("scheduled_delivery_date %q is not a valid ISO-8601 date", *req.ScheduledDeliveryDate)
	}
	if dateOnly(delivery).Before(dateOnly(now)) {
		return v, entities.NewValidationError("scheduled_delivery_date cannot be in the past")
	}

	items := make([]entities.OrderItem, 0, len(req.Items))
	for i, it := range req.Items {
		if it.ProductID == nil {
			return v, entities.NewValidationError("item %d: product_id is required", i+1)
		}
		if it.Quantity == nil {
			return v, entities.NewValidationError("item %d: quantity is required", i+1)
		}
		if *it.Quantity <= 0 {
			return v, entities.NewValidationError("item %d: quantity must be greater than zero", i+1)
		}
		items = append(items, entities.OrderItem{ProductID: *it.ProductID, Quantity: *it.Quantity})
	}

	if req.ClientID != nil {
		v.clientID = *req.ClientID
	}
	if req.VendorID != nil {
		v.vendorID = *req.VendorID
	}
	v.items = items
	v.totalAmount = *req.TotalAmount
	v.scheduledDelivery = delivery
	v.assignedTruck = req.AssignedTruck
	return v, nil
}

var deliveryDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDeliveryDate(s string) (time.Time, error) {
	var err error
	for _, layout := range deliveryDateLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// dateOnly drops the time of day: a delivery scheduled for today at any hour
// is acceptable.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func strPtrEmpty(s *string) bool {
	return s == nil || *s == ""
}
