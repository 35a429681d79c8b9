package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/distrimed/order-service/internal/entities"
	"github.com/distrimed/order-service/pkg/trm"
	"github.com/distrimed/order-service/pkg/utils"

	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	// CreateOrder inserts the order together with its items; callers wrap it
	// in a transaction scope so the aggregate lands atomically.
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListOrdersByClients(ctx context.Context, clientIDs []string, limit int) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	StatusCountsByClients(ctx context.Context, clientIDs []string) (map[entities.Status]int, error)
}

type AuthClient interface {
	GetAssignedClients(ctx context.Context, sellerID string) ([]string, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type EventPublisher interface {
	OrderCreated(ctx context.Context, order entities.Order) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	inventory InventoryClient
	auth      AuthClient
	cache     Cache
	events    EventPublisher

	checker   *stockChecker
	committer *stockCommitter
	numbers   *NumberGenerator

	now       func() time.Time
	pickTruck func(n int) int
}

type Option func(*orderService)

// WithClock replaces the wall clock; tests pin order numbers and the
// delivery-date cutoff with it.
func WithClock(now func() time.Time) Option {
	return func(s *orderService) {
		s.now = now
		s.numbers = NewNumberGenerator(now)
	}
}

// WithTruckPicker replaces the fleet picker used when the request carries no
// assigned_truck.
func WithTruckPicker(pick func(n int) int) Option {
	return func(s *orderService) {
		s.pickTruck = pick
	}
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	inventory InventoryClient,
	auth AuthClient,
	cache Cache,
	events EventPublisher,
	opts ...Option,
) *orderService {
	svc := &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		inventory: inventory,
		auth:      auth,
		cache:     cache,
		events:    events,
		now:       time.Now,
		pickTruck: rand.IntN,
	}
	svc.checker = newStockChecker(svc.logger, inventory)
	svc.committer = newStockCommitter(svc.logger, inventory)
	svc.numbers = NewNumberGenerator(time.Now)

	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateOrder runs the order-creation saga: validation, read-only stock
// verification, aggregate construction, sequential stock commit with
// compensation, then the atomic order+items insert. Stock decremented by a
// successful commit is NOT restored when the insert afterwards fails.
func (s *orderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (entities.Order, error) {
	v, err := validateCreateOrder(req, s.now())
	if err != nil {
		orderCreateFailures.WithLabelValues("validation").Inc()
		return entities.Order{}, err
	}

	// The cutoff is confirmed once more right before any side effect.
	if dateOnly(v.scheduledDelivery).Before(dateOnly(s.now())) {
		orderCreateFailures.WithLabelValues("validation").Inc()
		return entities.Order{}, entities.NewValidationError("scheduled_delivery_date cannot be in the past")
	}

	products, err := s.checker.Verify(ctx, v.items)
	if err != nil {
		orderCreateFailures.WithLabelValues("stock_check").Inc()
		return entities.Order{}, entities.AsBusinessError(err)
	}
	s.cacheProducts(products)

	order := entities.Order{
		OrderNumber:       s.numbers.Generate(),
		ClientID:          v.clientID,
		VendorID:          v.vendorID,
		Status:            entities.StatusEnPreparacion,
		TotalAmount:       v.totalAmount,
		ScheduledDelivery: v.scheduledDelivery,
		AssignedTruck:     v.assignedTruck,
		Items:             v.items,
	}
	if order.AssignedTruck == "" {
		order.AssignedTruck = entities.Fleet[s.pickTruck(len(entities.Fleet))]
	}
	if err := order.Validate(); err != nil {
		orderCreateFailures.WithLabelValues("validation").Inc()
		return entities.Order{}, err
	}

	if _, err := s.committer.Commit(ctx, order.Items); err != nil {
		orderCreateFailures.WithLabelValues("stock_commit").Inc()
		return entities.Order{}, entities.AsBusinessError(err)
	}

	var persisted entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		persisted, err = s.repo.CreateOrder(ctx, order)
		return err
	})
	if err != nil {
		// Known gap: the committed stock stays decremented here.
		orderCreateFailures.WithLabelValues("persistence").Inc()
		return entities.Order{}, entities.AsBusinessError(fmt.Errorf("failed to persist order: %w", err))
	}

	ordersCreated.Inc()
	s.logger.InfoContext(ctx, "order created",
		slog.String("order_number", persisted.OrderNumber),
		slog.Int("items", len(persisted.Items)),
	)

	if err := s.events.OrderCreated(ctx, persisted); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order created event",
			slog.String("order_number", persisted.OrderNumber), slog.Any("error", err))
	}

	return persisted, nil
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderCacheKey(orderNumber)); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_number", orderNumber), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByNumber(ctx, orderNumber)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

// OrderListing pairs orders with the catalog records needed to render their
// items.
type OrderListing struct {
	Orders   []entities.Order
	Products map[int64]entities.Product
}

func (s *orderService) ListOrders(ctx context.Context, clientID string) (OrderListing, error) {
	orders, err := s.repo.ListOrdersByClients(ctx, []string{clientID}, 0)
	if err != nil {
		return OrderListing{}, err
	}

	products, err := s.enrichProducts(ctx, orders)
	if err != nil {
		return OrderListing{}, err
	}
	return OrderListing{Orders: orders, Products: products}, nil
}

// SellerReport aggregates the orders of every client assigned to a seller.
type SellerReport struct {
	SellerID     string
	ClientCount  int
	StatusCounts map[entities.Status]int
	RecentOrders []entities.Order
}

const reportRecentOrders = 10

func (s *orderService) GetSellerReport(ctx context.Context, sellerID string) (SellerReport, error) {
	clients, err := s.auth.GetAssignedClients(ctx, sellerID)
	if err != nil {
		return SellerReport{}, fmt.Errorf("failed to resolve assigned clients: %w", err)
	}

	report := SellerReport{SellerID: sellerID, ClientCount: len(clients)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.repo.StatusCountsByClients(gctx, clients)
		if err == nil {
			report.StatusCounts = counts
		}
		return err
	})
	g.Go(func() error {
		orders, err := s.repo.ListOrdersByClients(gctx, clients, reportRecentOrders)
		if err == nil {
			report.RecentOrders = orders
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return SellerReport{}, err
	}

	return report, nil
}

// WarmUpCache preloads the most recent orders, so restarts do not start with
// a cold read path.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) enrichProducts(ctx context.Context, orders []entities.Order) (map[int64]entities.Product, error) {
	products := make(map[int64]entities.Product)
	for _, order := range orders {
		for _, it := range order.Items {
			if _, ok := products[it.ProductID]; ok {
				continue
			}

			if data, ok := s.cache.Get(productCacheKey(it.ProductID)); ok {
				var p entities.Product
				if err := p.Unmarshal(data); err == nil {
					products[it.ProductID] = p
					continue
				}
			}

			p, err := s.inventory.GetProduct(ctx, it.ProductID)
			if err != nil {
				return nil, fmt.Errorf("failed to enrich product %d: %w", it.ProductID, err)
			}
			products[it.ProductID] = p
			if data, err := p.Marshal(); err == nil {
				s.cache.Set(productCacheKey(it.ProductID), data)
			}
		}
	}
	return products, nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_number", order.OrderNumber), slog.Any("error", err))
		return
	}
	s.cache.Set(orderCacheKey(order.OrderNumber), data)
}

func (s *orderService) cacheProducts(products []entities.ProductStock) {
	for _, ps := range products {
		p := entities.Product{
			ProductID: ps.ProductID,
			Name:      ps.Name,
			SKU:       ps.SKU,
			Price:     ps.Price,
		}
		if data, err := p.Marshal(); err == nil {
			s.cache.Set(productCacheKey(p.ProductID), data)
		}
	}
}

func orderCacheKey(orderNumber string) string {
	return "order:" + orderNumber
}

func productCacheKey(productID int64) string {
	return fmt.Sprintf("product:%d", productID)
}
