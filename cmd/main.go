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

	decideBookingHandler "github.com/m04kA/SMC-AuditoriumService/internal/api/handlers/decide_booking"
	getDateBookingsHandler "github.com/m04kA/SMC-AuditoriumService/internal/api/handlers/get_date_bookings"
	getSlotsHandler "github.com/m04kA/SMC-AuditoriumService/internal/api/handlers/get_slots"
	getUnreadHandler "github.com/m04kA/SMC-AuditoriumService/internal/api/handlers/get_unread_notifications"
	listBookingsHandler "github.com/m04kA/SMC-AuditoriumService/internal/api/handlers/list_bookings"
	listPendingHandler "github.com/m04kA/SMC-AuditoriumService/internal/api/handlers/list_pending"
	markReadHandler "github.com/m04kA/SMC-AuditoriumService/internal/api/handlers/mark_notification_read"
	submitBookingHandler "github.com/m04kA/SMC-AuditoriumService/internal/api/handlers/submit_booking"
	"github.com/m04kA/SMC-AuditoriumService/internal/api/middleware"
	"github.com/m04kA/SMC-AuditoriumService/internal/config"
	bookingRepo "github.com/m04kA/SMC-AuditoriumService/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/SMC-AuditoriumService/internal/infra/storage/notification"
	bookingsService "github.com/m04kA/SMC-AuditoriumService/internal/service/bookings"
	notificationsService "github.com/m04kA/SMC-AuditoriumService/internal/service/notifications"
	decideBookingUC "github.com/m04kA/SMC-AuditoriumService/internal/usecase/decide_booking"
	getSlotsUC "github.com/m04kA/SMC-AuditoriumService/internal/usecase/get_slots"
	submitBookingUC "github.com/m04kA/SMC-AuditoriumService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-AuditoriumService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AuditoriumService/pkg/logger"
	"github.com/m04kA/SMC-AuditoriumService/pkg/metrics"
	"github.com/m04kA/SMC-AuditoriumService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AuditoriumService/pkg/txmanager"
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

	log.Info("Starting SMC-AuditoriumService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	notificationSvc := notificationsService.NewService(
		notificationRepository,
		cfg.Auth.EnforceNotificationOwnership,
		log,
	)
	if cfg.Auth.EnforceNotificationOwnership {
		log.Info("Notification ownership check enabled")
	}

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		submitBookingUC.AllowAllPolicy{},
		log,
	)
	decideBookingUseCase := decideBookingUC.NewUseCase(
		bookingRepository,
		notificationRepository,
		txMgr,
		log,
	)
	getSlotsUseCase := getSlotsUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	decideBooking := decideBookingHandler.NewHandler(decideBookingUseCase, log)
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	getDateBookings := getDateBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	listPending := listPendingHandler.NewHandler(bookingSvc, log)
	getUnread := getUnreadHandler.NewHandler(notificationSvc, log)
	markRead := markReadHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Все операции требуют аутентифицированного вызывающего (X-User-Email)
	authenticated := api.PathPrefix("").Subrouter()
	authenticated.Use(middleware.Auth)

	// --- Бронирования ---
	// Обзор заявок: одобренные + ожидающие решения
	authenticated.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Подача заявки на бронирование (учитель)
	teacherOnly := authenticated.PathPrefix("").Subrouter()
	teacherOnly.Use(middleware.RequireRole(middleware.RoleTeacher))
	teacherOnly.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// Рассмотрение заявок (завуч)
	principalOnly := authenticated.PathPrefix("").Subrouter()
	principalOnly.Use(middleware.RequireRole(middleware.RolePrincipal))
	principalOnly.HandleFunc("/bookings/pending", listPending.Handle).Methods(http.MethodGet)
	principalOnly.HandleFunc("/bookings/{bookingId}/decision", decideBooking.Handle).Methods(http.MethodPatch)

	// --- Календарь доступности ---
	authenticated.HandleFunc("/calendar/slots", getSlots.Handle).Methods(http.MethodGet)
	authenticated.HandleFunc("/calendar/bookings", getDateBookings.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	authenticated.HandleFunc("/notifications/unread", getUnread.Handle).Methods(http.MethodGet)
	authenticated.HandleFunc("/notifications/{notificationId}/read", markRead.Handle).Methods(http.MethodPatch)

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
