package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Bandhan203/Practicum-RMS-sub000/config"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/api"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/dataservice"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/settings"
	rest "github.com/Bandhan203/Practicum-RMS-sub000/internal/transport/http"
	"github.com/Bandhan203/Practicum-RMS-sub000/pkg/logger"
	"github.com/Bandhan203/Practicum-RMS-sub000/pkg/metrics"
	"github.com/Bandhan203/Practicum-RMS-sub000/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранный шлюз и его внешние интерфейсы.
type App struct {
	Logger ports.Logger
	Menu   *dataservice.MenuService
	Orders *dataservice.OrderService

	HTTPServer      *http.Server
	refreshEnabled  bool
	refreshInterval time.Duration
	gracefulTimeout time.Duration
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

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Базовый REST-клиент и клиенты сущностей.
	apiClient, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logg)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Сервисы данных: по одному кэшу на тип сущности.
	menuService := dataservice.NewMenuService(api.NewMenuClient(apiClient), logg)
	orderService := dataservice.NewOrderService(api.NewOrderClient(apiClient), logg)
	settingsStore := settings.NewStore(api.NewSettingsClient(apiClient), logg)

	// Настройки грузим при старте; недоступный backend не валит шлюз —
	// первая успешная загрузка случится по требованию.
	if err := settingsStore.EnsureLoaded(ctx); err != nil {
		logg.Warnf(ctx, "initial settings load failed: %v", err)
	}
	if err := menuService.EnsureLoaded(ctx); err != nil {
		logg.Warnf(ctx, "initial menu load failed: %v", err)
	}
	if err := orderService.EnsureLoaded(ctx); err != nil {
		logg.Warnf(ctx, "initial orders load failed: %v", err)
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(menuService, orderService, settingsStore, logg)
	router := rest.NewRouter(httpHandler, otelServiceName)

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
		Menu:            menuService,
		Orders:          orderService,
		HTTPServer:      httpSrv,
		refreshEnabled:  cfg.Refresh.Enabled,
		refreshInterval: cfg.Refresh.Interval,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// refreshLoop — периодическая повторная загрузка коллекций: кэш сходится
// к состоянию сервера даже без мутаций через этот процесс.
// ErrLoadInProgress не ошибка: загрузку уже выполняет кто-то другой.
func (a *App) refreshLoop(ctx context.Context) {
	interval := a.refreshInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.Menu.Load(ctx); err != nil && !errors.Is(err, dataservice.ErrLoadInProgress) {
				a.Logger.Warnf(ctx, "menu refresh failed: %v", err)
			}
			if err := a.Orders.Load(ctx); err != nil && !errors.Is(err, dataservice.ErrLoadInProgress) {
				a.Logger.Warnf(ctx, "orders refresh failed: %v", err)
			}
		}
	}
}

// Run — запускает HTTP-сервер и фоновое обновление; ждёт отмены контекста
// или ошибки и останавливается корректно.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	if a.refreshEnabled {
		go a.refreshLoop(ctx)
	}

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "gateway stopped")
	return nil
}
