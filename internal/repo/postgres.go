package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/distrimed/order-service/internal/entities"
	"github.com/distrimed/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder inserts the order and its items. The caller is expected to run
// it inside a transaction scope so the aggregate lands atomically.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_number", "client_id", "vendor_id", "status", "total_amount",
			"scheduled_delivery", "assigned_truck",
		).
		Values(
			o.OrderNumber, nullString(o.ClientID), nullString(o.VendorID),
			string(o.Status), o.TotalAmount, o.ScheduledDelivery, o.AssignedTruck,
		).
		Suffix("RETURNING id, created_at, updated_at").
		MustSql()

	var inserted Order
	if err := r.getContext(ctx, &inserted, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	o.ID = inserted.ID
	o.CreatedAt = inserted.CreatedAt
	o.UpdatedAt = inserted.UpdatedAt

	if len(o.Items) > 0 {
		q := r.qb.Insert("order_items").Columns("order_id", "product_id", "quantity")
		for _, it := range o.Items {
			q = q.Values(o.ID, it.ProductID, it.Quantity)
		}
		query, args := q.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return entities.Order{}, fmt.Errorf("failed to insert order items: %w", err)
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
	}

	return o, nil
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "order_number", "client_id", "vendor_id", "status", "total_amount",
		"scheduled_delivery", "assigned_truck", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"order_number": orderNumber}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrderIDs(ctx, []int64{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[order.ID]), nil
}

// ListOrdersByClients returns the orders of the given clients, newest first.
// A limit of zero means no limit.
func (r *postgresRepo) ListOrdersByClients(ctx context.Context, clientIDs []string, limit int) ([]entities.Order, error) {
	if len(clientIDs) == 0 {
		return []entities.Order{}, nil
	}

	q := r.qb.Select(
		"id", "order_number", "client_id", "vendor_id", "status", "total_amount",
		"scheduled_delivery", "assigned_truck", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"client_id": clientIDs}).
		OrderBy("created_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.assemble(ctx, orders)
}

// LatestOrders feeds the cache warm-up on startup.
func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"id", "order_number", "client_id", "vendor_id", "status", "total_amount",
		"scheduled_delivery", "assigned_truck", "created_at", "updated_at").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.assemble(ctx, orders)
}

// StatusCountsByClients aggregates order counts per status across a set of
// clients. Plain GROUP BY, used by the seller report.
func (r *postgresRepo) StatusCountsByClients(ctx context.Context, clientIDs []string) (map[entities.Status]int, error) {
	if len(clientIDs) == 0 {
		return map[entities.Status]int{}, nil
	}

	query, args := r.qb.Select("status", "COUNT(*) AS count").
		From("orders").
		Where(sq.Eq{"client_id": clientIDs}).
		GroupBy("status").
		MustSql()

	var rows []StatusCount
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to aggregate statuses: %w", err)
	}

	counts := make(map[entities.Status]int, len(rows))
	for _, row := range rows {
		counts[entities.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *postgresRepo) assemble(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	itemsMap, err := r.itemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) itemsByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error) {
	query, args := r.qb.Select("id", "order_id", "product_id", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[int64][]OrderItem, len(orderIDs))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}
	return itemsMap, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
