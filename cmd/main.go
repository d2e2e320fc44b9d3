package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers/calculate_quote"
	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers/list_extras"
	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers/list_halls"
	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers/list_season_rules"
	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers/resolve_price_list"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/config"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/cache/seasonrules"
	ratesRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/rates"
	"github.com/m04kA/SMC-VenueBooking/internal/pricing"
	catalogService "github.com/m04kA/SMC-VenueBooking/internal/service/catalog"
	calculateQuoteUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/calculate_quote"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
)

// noopQuoteMetrics используется, когда метрики выключены
type noopQuoteMetrics struct{}

func (noopQuoteMetrics) IncQuote(string) {}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueBooking...")
	log.Info("Configuration loaded from config.toml")

	policy, err := cfg.PricingPolicy()
	if err != nil {
		log.Fatal("Invalid pricing configuration: %v", err)
	}
	log.Info("Pricing policy: default_price_list=%s, friday_evening_from=%s, late_weekday_rate_from=%s",
		policy.DefaultPriceListID, policy.FridayEveningFrom, policy.LateWeekdayRateFrom)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий (с метриками или без)
	var ratesRepository *ratesRepo.Repository
	var quoteMetrics calculateQuoteUC.Metrics = noopQuoteMetrics{}

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		ratesRepository = ratesRepo.NewRepository(wrappedDB)
		quoteMetrics = metricsCollector
	} else {
		ratesRepository = ratesRepo.NewRepository(db)
	}

	// Источник сезонных правил: Redis-кэш поверх репозитория (если включен и доступен)
	var seasonRuleSource calculateQuoteUC.SeasonRuleProvider = ratesRepository
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:        cfg.Cache.Addr,
			Password:    cfg.Cache.Password,
			DB:          cfg.Cache.DB,
			DialTimeout: time.Duration(cfg.Cache.DialTimeout) * time.Second,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), time.Duration(cfg.Cache.DialTimeout)*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable, season rules cache disabled: addr=%s, error=%v", cfg.Cache.Addr, err)
		} else {
			seasonRuleSource = seasonrules.New(ratesRepository, redisClient, cfg.Cache.Prefix, cfg.Cache.TTLDuration(), log)
			log.Info("Season rules cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
		}
		cancelPing()
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		ratesRepository,
		seasonRuleSource,
		policy.DefaultPriceListID,
		log,
	)

	// Инициализируем use cases
	calculateQuoteUseCase := calculateQuoteUC.NewUseCase(
		ratesRepository,
		seasonRuleSource,
		pricing.NewCalculator(policy),
		quoteMetrics,
		log,
	)

	// Инициализируем handlers
	calculateQuote := calculate_quote.NewHandler(calculateQuoteUseCase, log)
	listHalls := list_halls.NewHandler(catalogSvc, log)
	listExtras := list_extras.NewHandler(catalogSvc, log)
	listSeasonRules := list_season_rules.NewHandler(catalogSvc, log)
	resolvePriceList := resolve_price_list.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Расчет стоимости аренды
	api.HandleFunc("/quotes", calculateQuote.Handle).Methods(http.MethodPost)

	// Справочники для выбора до расчета
	api.HandleFunc("/halls", listHalls.Handle).Methods(http.MethodGet)
	api.HandleFunc("/extras", listExtras.Handle).Methods(http.MethodGet)
	api.HandleFunc("/season-rules", listSeasonRules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/price-lists/resolve", resolvePriceList.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
