package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/distrimed/order-service/internal/app"
	"github.com/distrimed/order-service/internal/auth"
	"github.com/distrimed/order-service/internal/config"
	"github.com/distrimed/order-service/internal/events"
	"github.com/distrimed/order-service/internal/handler"
	"github.com/distrimed/order-service/internal/inventory"
	"github.com/distrimed/order-service/internal/postgres"
	"github.com/distrimed/order-service/internal/repo"
	"github.com/distrimed/order-service/internal/service"
	"github.com/distrimed/order-service/pkg/cache"
	"github.com/distrimed/order-service/pkg/trm"

	"github.com/joho/godotenv"

	_ "github.com/distrimed/order-service/docs"
)

// @title           Order Service API
// @version         1.0
// @description     Order creation and reporting for the medical-supply distribution platform
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	inventoryClient := inventory.NewClient(logger, conf.Inventory)
	authClient := auth.NewClient(logger, conf.Auth)
	publisher := events.NewPublisher(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, inventoryClient, authClient, orderCache, publisher)

	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(
		janitorStarter{cache: orderCache},
		warmUpStarter{svc: orderService, count: conf.Cache.Capacity},
	)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type janitorStarter struct {
	cache *cache.LRUCache
}

func (s janitorStarter) Start(ctx context.Context) error {
	s.cache.StartJanitor(ctx)
	return nil
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type warmUpStarter struct {
	svc   warmUpper
	count int
}

func (s warmUpStarter) Start(ctx context.Context) error {
	return s.svc.WarmUpCache(ctx, s.count)
}
