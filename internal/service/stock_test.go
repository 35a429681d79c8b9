package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/distrimed/order-service/internal/entities"
	"github.com/distrimed/order-service/internal/inventory"
	mocks "github.com/distrimed/order-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStockChecker_Verify(t *testing.T) {
	items := []entities.OrderItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
		{ProductID: 3, Quantity: 1},
	}

	t.Run("all available", func(t *testing.T) {
		inv := mocks.NewMockInventoryClient(t)
		checker := newStockChecker(discardLogger(), inv)

		var checked []int64
		for _, it := range items {
			inv.EXPECT().CheckAvailability(mock.Anything, it.ProductID, it.Quantity).
				Run(func(ctx context.Context, productID int64, quantity int) {
					checked = append(checked, productID)
				}).
				Return(entities.ProductStock{ProductID: it.ProductID, AvailableQuantity: 100}, nil).Once()
		}

		products, err := checker.Verify(context.Background(), items)
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, []int64{1, 2, 3}, checked)
	})

	t.Run("stops at the first failing item", func(t *testing.T) {
		inv := mocks.NewMockInventoryClient(t)
		checker := newStockChecker(discardLogger(), inv)

		inv.EXPECT().CheckAvailability(mock.Anything, int64(1), 2).
			Return(entities.ProductStock{ProductID: 1, AvailableQuantity: 100}, nil).Once()
		inv.EXPECT().CheckAvailability(mock.Anything, int64(2), 3).
			Return(entities.ProductStock{}, &inventory.InsufficientStockError{ProductID: 2, Available: 1, Required: 3}).Once()

		_, err := checker.Verify(context.Background(), items)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product 2")

		// product 3 is never reached
		inv.AssertNotCalled(t, "CheckAvailability", mock.Anything, int64(3), 1)
	})

	t.Run("reported availability below request fails", func(t *testing.T) {
		inv := mocks.NewMockInventoryClient(t)
		checker := newStockChecker(discardLogger(), inv)

		inv.EXPECT().CheckAvailability(mock.Anything, int64(1), 2).
			Return(entities.ProductStock{ProductID: 1, AvailableQuantity: 1}, nil).Once()

		_, err := checker.Verify(context.Background(), items)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product 1 unavailable: available 1, required 2")
	})

	t.Run("unknown product", func(t *testing.T) {
		inv := mocks.NewMockInventoryClient(t)
		checker := newStockChecker(discardLogger(), inv)

		inv.EXPECT().CheckAvailability(mock.Anything, int64(1), 2).
			Return(entities.ProductStock{}, inventory.ErrProductNotFound).Once()

		_, err := checker.Verify(context.Background(), items)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product 1 does not exist")
		assert.ErrorIs(t, err, inventory.ErrProductNotFound)
	})
}

func TestStockCommitter_Commit(t *testing.T) {
	items := []entities.OrderItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
		{ProductID: 3, Quantity: 1},
	}

	t.Run("all commit in submission order", func(t *testing.T) {
		inv := mocks.NewMockInventoryClient(t)
		committer := newStockCommitter(discardLogger(), inv)

		var decremented []int64
		for _, it := range items {
			inv.EXPECT().DecrementStock(mock.Anything, it.ProductID, it.Quantity).
				Run(func(ctx context.Context, productID int64, quantity int) {
					decremented = append(decremented, productID)
				}).
				Return(entities.StockMovement{ProductID: it.ProductID}, nil).Once()
		}

		committed, err := committer.Commit(context.Background(), items)
		require.NoError(t, err)
		assert.Equal(t, items, committed)
		assert.Equal(t, []int64{1, 2, 3}, decremented)
	})

	t.Run("failure compensates committed prefix in commit order", func(t *testing.T) {
		inv := mocks.NewMockInventoryClient(t)
		committer := newStockCommitter(discardLogger(), inv)

		inv.EXPECT().DecrementStock(mock.Anything, int64(1), 2).
			Return(entities.StockMovement{}, nil).Once()
		inv.EXPECT().DecrementStock(mock.Anything, int64(2), 3).
			Return(entities.StockMovement{}, nil).Once()

		decErr := &inventory.InsufficientStockError{ProductID: 3, Available: 0, Required: 1}
		inv.EXPECT().DecrementStock(mock.Anything, int64(3), 1).
			Return(entities.StockMovement{}, decErr).Once()

		var compensated []int64
		inv.EXPECT().IncrementStock(mock.Anything, int64(1), 2, "compensation").
			Run(func(ctx context.Context, productID int64, quantity int, reason string) {
				compensated = append(compensated, productID)
			}).
			Return(nil).Once()
		inv.EXPECT().IncrementStock(mock.Anything, int64(2), 3, "compensation").
			Run(func(ctx context.Context, productID int64, quantity int, reason string) {
				compensated = append(compensated, productID)
			}).
			Return(nil).Once()

		_, err := committer.Commit(context.Background(), items)

		// the original error propagates unchanged
		require.Same(t, error(decErr), err)
		assert.Equal(t, []int64{1, 2}, compensated)
	})

	t.Run("first item failure compensates nothing", func(t *testing.T) {
		inv := mocks.NewMockInventoryClient(t)
		committer := newStockCommitter(discardLogger(), inv)

		decErr := errors.New("inventory service unreachable")
		inv.EXPECT().DecrementStock(mock.Anything, int64(1), 2).
			Return(entities.StockMovement{}, decErr).Once()

		_, err := committer.Commit(context.Background(), items)
		require.ErrorIs(t, err, decErr)

		inv.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("compensation failures are swallowed", func(t *testing.T) {
		inv := mocks.NewMockInventoryClient(t)
		committer := newStockCommitter(discardLogger(), inv)

		inv.EXPECT().DecrementStock(mock.Anything, int64(1), 2).
			Return(entities.StockMovement{}, nil).Once()
		inv.EXPECT().DecrementStock(mock.Anything, int64(2), 3).
			Return(entities.StockMovement{}, nil).Once()

		decErr := errors.New("decrement failed")
		inv.EXPECT().DecrementStock(mock.Anything, int64(3), 1).
			Return(entities.StockMovement{}, decErr).Once()

		// first compensation fails, the second still runs
		inv.EXPECT().IncrementStock(mock.Anything, int64(1), 2, "compensation").
			Return(errors.New("increment failed")).Once()
		inv.EXPECT().IncrementStock(mock.Anything, int64(2), 3, "compensation").
			Return(nil).Once()

		_, err := committer.Commit(context.Background(), items)
		require.ErrorIs(t, err, decErr)
	})
}
