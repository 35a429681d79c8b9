package repo

import (
	"database/sql"
	"time"

	"github.com/distrimed/order-service/internal/entities"
)

type Order struct {
	ID                int64          `db:"id"`
	OrderNumber       string         `db:"order_number"`
	ClientID          sql.NullString `db:"client_id"`
	VendorID          sql.NullString `db:"vendor_id"`
	Status            string         `db:"status"`
	TotalAmount       float64        `db:"total_amount"`
	ScheduledDelivery time.Time      `db:"scheduled_delivery"`
	AssignedTruck     string         `db:"assigned_truck"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type OrderItem struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		ClientID:          nullStringToString(o.ClientID),
		VendorID:          nullStringToString(o.VendorID),
		Status:            entities.Status(o.Status),
		TotalAmount:       o.TotalAmount,
		ScheduledDelivery: o.ScheduledDelivery,
		AssignedTruck:     o.AssignedTruck,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
