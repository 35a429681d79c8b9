package entities

import (
	"bytes"
	"encoding/gob"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an order. The Spanish labels are part of
// the platform contract and are stored and serialized as-is.
type Status string

const (
	StatusRecibido      Status = "Recibido"
	StatusEnPreparacion Status = "En Preparación"
	StatusEnTransito    Status = "En Tránsito"
	StatusEntregado     Status = "Entregado"
	StatusDevuelto      Status = "Devuelto"
)

func (s Status) Valid() bool {
	switch s {
	case StatusRecibido, StatusEnPreparacion, StatusEnTransito, StatusEntregado, StatusDevuelto:
		return true
	}
	return false
}

// Fleet is the enumerated set of trucks an order can be assigned to.
var Fleet = []string{"CAM-001", "CAM-002", "CAM-003", "CAM-004", "CAM-005"}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
}

type Order struct {
	ID                int64
	OrderNumber       string
	ClientID          string // empty when the order belongs to a vendor
	VendorID          string
	Status            Status
	TotalAmount       float64
	ScheduledDelivery time.Time
	AssignedTruck     string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items []OrderItem
}

var orderNumberRe = regexp.MustCompile(`^PED-(\d{8})-\d{5}$`)

// Validate enforces the aggregate invariants and reports the first violation.
func (o *Order) Validate() error {
	m := orderNumberRe.FindStringSubmatch(o.OrderNumber)
	if m == nil {
		return NewValidationError("invalid order number %q, want PED-YYYYMMDD-NNNNN", o.OrderNumber)
	}
	if _, err := time.Parse("20060102", m[1]); err != nil {
		return NewValidationError("order number %q does not contain a valid date", o.OrderNumber)
	}

	if o.ClientID == "" && o.VendorID == "" {
		return NewValidationError("order must belong to a client or a vendor")
	}
	if o.ClientID != "" {
		if _, err := uuid.Parse(o.ClientID); err != nil {
			return NewValidationError("client_id %q is not a valid UUID", o.ClientID)
		}
	}
	if o.VendorID != "" {
		if _, err := uuid.Parse(o.VendorID); err != nil {
			return NewValidationError("vendor_id %q is not a valid UUID", o.VendorID)
		}
	}

	if !o.Status.Valid() {
		return NewValidationError("unknown order status %q", string(o.Status))
	}

	for _, it := range o.Items {
		if it.ProductID <= 0 {
			return NewValidationError("item product_id must be positive, got %d", it.ProductID)
		}
		if it.Quantity <= 0 {
			return NewValidationError("item quantity must be positive, got %d", it.Quantity)
		}
	}
	return nil
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Product{})
}
