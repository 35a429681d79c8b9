package handler

import (
	"time"

	"github.com/distrimed/order-service/internal/entities"
	"github.com/distrimed/order-service/internal/service"
)

// CreateOrderRequest is the create-order payload. Pointer fields distinguish
// absent values from zero ones; presence checks belong to the domain
// validator, not to struct tags.
type CreateOrderRequest struct {
	ClientID              *string           `json:"client_id"`
	VendorID              *string           `json:"vendor_id"`
	Items                 []CreateOrderItem `json:"items"`
	TotalAmount           *float64          `json:"total_amount"`
	ScheduledDeliveryDate *string           `json:"scheduled_delivery_date"`
	AssignedTruck         string            `json:"assigned_truck,omitempty"`
}

type CreateOrderItem struct {
	ProductID *int64 `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

// Order is the JSON representation of a persisted order.
type Order struct {
	ID                int64       `json:"id"`
	OrderNumber       string      `json:"order_number"`
	ClientID          string      `json:"client_id,omitempty"`
	VendorID          string      `json:"vendor_id,omitempty"`
	Status            string      `json:"status"`
	TotalAmount       float64     `json:"total_amount"`
	ScheduledDelivery time.Time   `json:"scheduled_delivery"`
	AssignedTruck     string      `json:"assigned_truck"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	Items             []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`

	// Catalog enrichment, present on listing responses only.
	Name     string  `json:"name,omitempty"`
	SKU      string  `json:"sku,omitempty"`
	Price    float64 `json:"price,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
}

type SellerReport struct {
	SellerID     string         `json:"seller_id"`
	ClientCount  int            `json:"client_count"`
	StatusCounts map[string]int `json:"status_counts"`
	RecentOrders []Order        `json:"recent_orders"`
}

func (r CreateOrderRequest) ToService() service.CreateOrderRequest {
	items := make([]service.CreateOrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.CreateOrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return service.CreateOrderRequest{
		ClientID:              r.ClientID,
		VendorID:              r.VendorID,
		Items:                 items,
		TotalAmount:           r.TotalAmount,
		ScheduledDeliveryDate: r.ScheduledDeliveryDate,
		AssignedTruck:         r.AssignedTruck,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return orderToJSON(o, nil)
}

func ListingToJSON(listing service.OrderListing) []Order {
	orders := make([]Order, 0, len(listing.Orders))
	for _, o := range listing.Orders {
		orders = append(orders, orderToJSON(o, listing.Products))
	}
	return orders
}

func ReportToJSON(r service.SellerReport) SellerReport {
	counts := make(map[string]int, len(r.StatusCounts))
	for status, count := range r.StatusCounts {
		counts[string(status)] = count
	}
	recent := make([]Order, 0, len(r.RecentOrders))
	for _, o := range r.RecentOrders {
		recent = append(recent, orderToJSON(o, nil))
	}
	return SellerReport{
		SellerID:     r.SellerID,
		ClientCount:  r.ClientCount,
		StatusCounts: counts,
		RecentOrders: recent,
	}
}

func orderToJSON(o entities.Order, products map[int64]entities.Product) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		item := OrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
		if p, ok := products[it.ProductID]; ok {
			item.Name = p.Name
			item.SKU = p.SKU
			item.Price = p.Price
			item.ImageURL = p.ImageURL
		}
		items = append(items, item)
	}

	return Order{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		ClientID:          o.ClientID,
		VendorID:          o.VendorID,
		Status:            string(o.Status),
		TotalAmount:       o.TotalAmount,
		ScheduledDelivery: o.ScheduledDelivery,
		AssignedTruck:     o.AssignedTruck,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Items:             items,
	}
}
