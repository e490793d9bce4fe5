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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailableDatesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_dates"
	getCompanyPolicyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_company_policy"
	getSlotPageHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_slot_page"
	updateCompanyPolicyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_company_policy"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	policyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/policy"
	googleCalendarClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/googlecalendar"
	tenantServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/tenantservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	policyService "github.com/m04kA/SMC-AvailabilityService/internal/service/policy"
	findAvailableDatesUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/find_available_dates"
	getSlotPageUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_slot_page"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиента реестра компаний
	tenantClient := tenantServiceClient.NewClient(
		cfg.TenantService.URL,
		time.Duration(cfg.TenantService.Timeout)*time.Second,
		log,
	)
	log.Info("TenantService client initialized (url=%s, timeout=%ds)",
		cfg.TenantService.URL, cfg.TenantService.Timeout)

	// Инициализируем клиента Google Calendar
	ctx := context.Background()
	tokens, err := googleCalendarClient.FileTokenSource(ctx, cfg.GoogleCalendar.CredentialsFile)
	if err != nil {
		log.Fatal("Failed to load Google Calendar credentials: %v", err)
	}

	calendarService, err := googleCalendarClient.NewService(
		ctx,
		tokens,
		time.Duration(cfg.GoogleCalendar.Timeout)*time.Second,
	)
	if err != nil {
		log.Fatal("Failed to initialize Google Calendar service: %v", err)
	}
	calendarClient := googleCalendarClient.NewClient(calendarService, log)
	log.Info("Google Calendar client initialized (credentials=%s, timeout=%ds)",
		cfg.GoogleCalendar.CredentialsFile, cfg.GoogleCalendar.Timeout)

	// Инициализируем репозиторий политик (с метриками или без)
	var policyRepository *policyRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		policyRepository = policyRepo.NewRepository(wrappedDB)
	} else {
		policyRepository = policyRepo.NewRepository(db)
	}

	// Дефолтная политика сервиса из конфигурации
	defaults := domain.SchedulingPolicy{
		SlotDurationMinutes:     cfg.Scheduling.SlotDurationMinutes,
		MinBookingNoticeMinutes: cfg.Scheduling.MinBookingNoticeMinutes,
		MaxConcurrentBookings:   cfg.Scheduling.MaxConcurrentBookings,
		AdvanceBookingDays:      cfg.Scheduling.AdvanceBookingDays,
		PageSize:                cfg.Scheduling.PageSize,
		MaxScanDays:             cfg.Scheduling.MaxScanDays,
	}

	// Движок расчёта доступности
	engine := scheduling.NewEngine(calendarClient, log)

	// Инициализируем сервисы
	policySvc := policyService.NewService(
		policyRepository,
		tenantClient,
		defaults,
		log,
	)

	// Инициализируем use cases
	findAvailableDatesUseCase := findAvailableDatesUC.NewUseCase(
		policyRepository,
		tenantClient,
		engine,
		defaults,
		log,
	)

	getSlotPageUseCase := getSlotPageUC.NewUseCase(
		policyRepository,
		tenantClient,
		engine,
		defaults,
		log,
	)

	// Инициализируем handlers
	getAvailableDates := getAvailableDatesHandler.NewHandler(findAvailableDatesUseCase, log)
	getSlotPage := getSlotPageHandler.NewHandler(getSlotPageUseCase, log)
	getCompanyPolicy := getCompanyPolicyHandler.NewHandler(policySvc, log)
	updateCompanyPolicy := updateCompanyPolicyHandler.NewHandler(policySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу проставляется request id
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Ближайшие даты со свободными слотами
	api.HandleFunc("/companies/{companyId}/available-dates",
		getAvailableDates.Handle).Methods(http.MethodGet)

	// Страница свободных слотов на дату
	api.HandleFunc("/companies/{companyId}/slots",
		getSlotPage.Handle).Methods(http.MethodGet)

	// Действующая политика расчёта слотов компании
	api.HandleFunc("/companies/{companyId}/policy",
		getCompanyPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание или замена политики компании (для менеджеров)
	protected.HandleFunc("/companies/{companyId}/policy",
		updateCompanyPolicy.Handle).Methods(http.MethodPut)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
