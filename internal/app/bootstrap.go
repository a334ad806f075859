package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/product_wizard/config"
	"github.com/Gunvolt24/product_wizard/internal/cache"
	"github.com/Gunvolt24/product_wizard/internal/janitor"
	"github.com/Gunvolt24/product_wizard/internal/kafka"
	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/internal/shopify"
	rest "github.com/Gunvolt24/product_wizard/internal/transport/http"
	"github.com/Gunvolt24/product_wizard/internal/usecase"
	"github.com/Gunvolt24/product_wizard/pkg/logger"
	"github.com/Gunvolt24/product_wizard/pkg/metrics"
	"github.com/Gunvolt24/product_wizard/pkg/telemetry"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

// Scheduler — фоновая периодическая задача (очистка кэша).
type Scheduler interface {
	Start()
	Stop(ctx context.Context)
}

// Drainer — ожидание фоновых обновлений кэша при остановке.
type Drainer interface {
	Drain(ctx context.Context) bool
}

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger        ports.Logger          // логгер
	HTTPServer    *http.Server          // HTTP-сервер
	KafkaConsumer ports.MessageConsumer // консьюмер событий; nil → Kafka выключена
	Janitor       Scheduler             // очистка истёкших записей; nil → выключена
	Cache         Drainer               // фоновые обновления кэша; nil → не ждём

	warmUp          func(ctx context.Context) // прогрев после старта HTTP; nil → без прогрева
	gracefulTimeout time.Duration             // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Хранилище кэша (postgres | redis | memory).
	store, closeStore, err := newCacheStore(ctx, cfg, logg)
	if err != nil {
		closeLogger()
		return nil, func() {}, err
	}

	sorter, err := newSorter(ctx, cfg.Variant.SizeTableFile, logg)
	if err != nil {
		closeStore()
		closeLogger()
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.TracingConfig{
			ServiceName: cfg.Tracing.ServiceName,
			Version:     cfg.Tracing.Version,
			Environment: cfg.Tracing.Environment,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
			Insecure:    cfg.Tracing.Insecure,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s env=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Environment, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	cacheSvc := usecase.NewCacheService(store,
		cache.NewPrometheusStats(cache.NewMemoryStats()),
		logg,
		usecase.WithTTL(cfg.Cache.TTL),
		usecase.WithStaleRatio(cfg.Cache.StaleRatio),
		usecase.WithRefreshTimeout(cfg.Cache.RefreshTimeout),
	)
	client := shopify.NewClient(shopify.Config{
		APIVersion: cfg.Shopify.APIVersion,
		Tokens:     cfg.Shopify.Tokens,
		BaseURL:    cfg.Shopify.BaseURL,
		Timeout:    cfg.Shopify.Timeout,
	}, logg, nil)
	catalogSvc := usecase.NewCatalogService(cacheSvc, client, logg, sorter, cfg.Shopify.PageSize)
	variantSvc := usecase.NewVariantService(client, validate.NewRequestValidator(validate.MaxVariants), sorter, logg)
	events := usecase.NewEventHandler(cacheSvc, logg)

	if len(cfg.Shopify.Tokens) == 0 {
		logg.Warnf(ctx, "no shopify tokens configured: every shop will be rejected")
	}
	if cfg.Shopify.WebhookSecret == "" {
		logg.Warnf(ctx, "shopify webhook secret is empty: webhooks will be rejected")
	}

	// Очистка давно истёкших записей.
	jan, err := janitor.New(store, logg, cfg.Cache.Retention, cfg.Cache.JanitorSpec)
	if err != nil {
		closeStore()
		closeLogger()
		return nil, func() {}, err
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(rest.Services{
		Catalog:  catalogSvc,
		Variants: variantSvc,
		Cache:    cacheSvc,
		Events:   events,
	}, logg, cfg.HTTP.HandlerTimeout, rest.WithWebhookSecret(cfg.Shopify.WebhookSecret))
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Janitor:         jan,
		Cache:           cacheSvc,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Конфигурация и создание консьюмера Kafka.
	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
			MaxWait:        cfg.Kafka.MaxWait,
		}
		app.KafkaConsumer = kafka.NewConsumer(&kafkaCfg, events, logg)
	}

	// Прогрев кэша заданных магазинов.
	if shops := cfg.Cache.WarmUpShops; len(shops) > 0 {
		app.warmUp = func(ctx context.Context) {
			if err := catalogSvc.WarmUpShops(ctx, shops); err != nil {
				logg.Warnf(ctx, "warm-up cache failed: %v", err)
			}
		}
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if app.KafkaConsumer != nil {
			if err := app.KafkaConsumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}

		closeStore()
		closeLogger()
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер, консьюмера и janitor; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if a.Janitor != nil {
		a.Janitor.Start()
	}
	if a.warmUp != nil {
		go a.warmUp(ctx)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	if a.Janitor != nil {
		a.Janitor.Stop(shutdownCtx)
	}
	if a.Cache != nil && !a.Cache.Drain(shutdownCtx) {
		a.Logger.Warnf(ctx, "background cache refreshes still running at shutdown")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
