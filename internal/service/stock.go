package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/distrimed/order-service/internal/entities"
	"github.com/distrimed/order-service/internal/inventory"
)

// InventoryClient is the narrow view of the inventory service this package
// consumes. Decrement and increment are each atomic per product on the
// inventory side; nothing here is atomic across products.
type InventoryClient interface {
	CheckAvailability(ctx context.Context, productID int64, quantity int) (entities.ProductStock, error)
	DecrementStock(ctx context.Context, productID int64, quantity int) (entities.StockMovement, error)
	IncrementStock(ctx context.Context, productID int64, quantity int, reason string) error
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
}

const compensationReason = "compensation"

type stockChecker struct {
	logger    *slog.Logger
	inventory InventoryClient
}

func newStockChecker(logger *slog.Logger, inv InventoryClient) *stockChecker {
	return &stockChecker{logger: logger, inventory: inv}
}

// Verify checks availability for every item, strictly in submission order,
// without modifying any stock. The first failing item stops the walk, so the
// reported product is deterministic. Enriched records come back for the
// items that were reached.
func (c *stockChecker) Verify(ctx context.Context, items []entities.OrderItem) ([]entities.ProductStock, error) {
	products := make([]entities.ProductStock, 0, len(items))
	for _, it := range items {
		ps, err := c.inventory.CheckAvailability(ctx, it.ProductID, it.Quantity)
		if err != nil {
			return nil, verifyError(it, err)
		}
		if ps.AvailableQuantity < it.Quantity {
			return nil, entities.NewBusinessError(nil,
				"product %d unavailable: available %d, required %d",
				it.ProductID, ps.AvailableQuantity, it.Quantity)
		}
		products = append(products, ps)
	}
	return products, nil
}

func verifyError(it entities.OrderItem, err error) error {
	var ise *inventory.InsufficientStockError
	if errors.As(err, &ise) {
		return entities.NewBusinessError(err,
			"product %d unavailable: available %d, required %d",
			ise.ProductID, ise.Available, ise.Required)
	}
	if errors.Is(err, inventory.ErrProductNotFound) {
		return entities.NewBusinessError(err, "product %d does not exist", it.ProductID)
	}
	return entities.NewBusinessError(err, "failed to verify stock for product %d: %v", it.ProductID, err)
}

type stockCommitter struct {
	logger    *slog.Logger
	inventory InventoryClient
}

func newStockCommitter(logger *slog.Logger, inv InventoryClient) *stockCommitter {
	return &stockCommitter{
		logger:    logger.With(slog.String("component", "stock_committer")),
		inventory: inv,
	}
}

// Commit decrements stock item by item in submission order. On the first
// failure every previously committed item is compensated, in the order it
// was committed, and the original error is returned unchanged. No retries
// and no persistence happen here.
func (s *stockCommitter) Commit(ctx context.Context, items []entities.OrderItem) ([]entities.OrderItem, error) {
	committed := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		if _, err := s.inventory.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			s.compensate(ctx, committed)
			return nil, err
		}
		committed = append(committed, it)
		stockCommits.Inc()
	}
	return committed, nil
}

// compensate is best effort: an increment failure is logged and never blocks
// the remaining compensations, so inventory can stay under-restored.
func (s *stockCommitter) compensate(ctx context.Context, committed []entities.OrderItem) {
	for _, c := range committed {
		stockCompensations.Inc()
		if err := s.inventory.IncrementStock(ctx, c.ProductID, c.Quantity, compensationReason); err != nil {
			compensationFailures.Inc()
			s.logger.ErrorContext(ctx, "failed to compensate stock",
				slog.Int64("product_id", c.ProductID),
				slog.Int("quantity", c.Quantity),
				slog.Any("error", err),
			)
		}
	}
}
