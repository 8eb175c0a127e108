package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront/docs"
	"github.com/SergeyBogomolovv/storefront/internal/app"
	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/gateway/hosted"
	"github.com/SergeyBogomolovv/storefront/internal/gateway/mpesa"
	"github.com/SergeyBogomolovv/storefront/internal/handler"
	"github.com/SergeyBogomolovv/storefront/internal/notify"
	"github.com/SergeyBogomolovv/storefront/internal/postgres"
	"github.com/SergeyBogomolovv/storefront/internal/repo"
	"github.com/SergeyBogomolovv/storefront/internal/service"
	"github.com/SergeyBogomolovv/storefront/pkg/cache"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title           Storefront API
// @version         1.0
// @description     Документация HTTP API магазина: корзина, заказы, оплата
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(db))

	storage := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	cache := newCache(logger, conf.Cache)

	handler.RegisterMetrics()

	providerClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	gateways := service.NewGateways(
		mpesa.New(logger, mpesa.Config(conf.Payments.Mpesa), providerClient),
		hosted.New(logger, hosted.Config(conf.Payments.Hosted), providerClient),
	)

	discountService := service.NewDiscountService(logger, storage, cache)
	cartService := service.NewCartService(logger, storage, storage)
	orderService := service.NewOrderService(logger, txManager, storage, storage, service.NewAggregator(discountService), cache)
	paymentService := service.NewPaymentService(logger, storage, gateways, conf.Payments.Timeout)
	confirmationService := service.NewConfirmationService(
		logger, txManager, storage, storage, gateways,
		conf.Payments.Timeout, conf.Payments.Freshness,
	)

	smtpClient, err := notify.NewSMTPClient(conf.SMTP)
	panicIfErr("failed to create smtp client", err)
	mailer := notify.NewMailer(logger, smtpClient, notify.NewRenderer(), conf.SMTP.From)

	publisher := notify.NewPublisher(logger, storage, notify.NewKafkaWriter(conf.Kafka), conf.Outbox)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, mailer)
	httpHandler := handler.NewHTTPHandler(logger, conf.AdminToken, handler.Services{
		Cart:          cartService,
		Orders:        orderService,
		Payments:      paymentService,
		Confirmations: confirmationService,
		Discounts:     discountService,
	})

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(publisher, kafkaHandler)
	app.SetStarters(cache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.WarmUp})
	app.SetHealthChecks(db)

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

type startableCache interface {
	service.Cache
	app.Starter
}

func newCache(logger *slog.Logger, cfg config.Cache) startableCache {
	if cfg.Driver == "redis" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		return cache.NewRedisCache(logger, client, "storefront:", cfg.TTL)
	}
	return cache.NewLRUCache(cfg.Capacity, cfg.TTL)
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, limit int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	if a.count == 0 {
		return nil
	}
	return a.svc.WarmUpCache(ctx, a.count)
}
