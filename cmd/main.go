package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	accountHandler "github.com/m04kA/bookminton/internal/api/handlers/account"
	adminBookingsHandler "github.com/m04kA/bookminton/internal/api/handlers/admin_bookings"
	arenaImagesHandler "github.com/m04kA/bookminton/internal/api/handlers/arena_images"
	bookingEventsHandler "github.com/m04kA/bookminton/internal/api/handlers/booking_events"
	bookingQRHandler "github.com/m04kA/bookminton/internal/api/handlers/booking_qr"
	cancelBookingHandler "github.com/m04kA/bookminton/internal/api/handlers/cancel_booking"
	checkInHandler "github.com/m04kA/bookminton/internal/api/handlers/check_in"
	courtsHandler "github.com/m04kA/bookminton/internal/api/handlers/courts"
	createReservationHandler "github.com/m04kA/bookminton/internal/api/handlers/create_reservation"
	getArenaHandler "github.com/m04kA/bookminton/internal/api/handlers/get_arena"
	getAvailabilityHandler "github.com/m04kA/bookminton/internal/api/handlers/get_availability"
	getReceiptHandler "github.com/m04kA/bookminton/internal/api/handlers/get_receipt"
	myBookingsHandler "github.com/m04kA/bookminton/internal/api/handlers/my_bookings"
	quoteReservationHandler "github.com/m04kA/bookminton/internal/api/handlers/quote_reservation"
	sessionCountdownHandler "github.com/m04kA/bookminton/internal/api/handlers/session_countdown"
	slotsHandler "github.com/m04kA/bookminton/internal/api/handlers/slots"
	updateArenaHandler "github.com/m04kA/bookminton/internal/api/handlers/update_arena"
	"github.com/m04kA/bookminton/internal/api/middleware"
	"github.com/m04kA/bookminton/internal/config"
	"github.com/m04kA/bookminton/internal/domain"
	"github.com/m04kA/bookminton/internal/infra/cache"
	"github.com/m04kA/bookminton/internal/infra/events"
	"github.com/m04kA/bookminton/internal/infra/events/pgnotify"
	"github.com/m04kA/bookminton/internal/infra/events/rabbitmq"
	"github.com/m04kA/bookminton/internal/infra/objectstore"
	arenaRepo "github.com/m04kA/bookminton/internal/infra/storage/arena"
	bookingRepo "github.com/m04kA/bookminton/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/bookminton/internal/infra/storage/court"
	slotRepo "github.com/m04kA/bookminton/internal/infra/storage/slot"
	userRepo "github.com/m04kA/bookminton/internal/infra/storage/user"
	"github.com/m04kA/bookminton/internal/integrations/telegram"
	arenaService "github.com/m04kA/bookminton/internal/service/arena"
	authService "github.com/m04kA/bookminton/internal/service/auth"
	bookingsService "github.com/m04kA/bookminton/internal/service/bookings"
	catalogService "github.com/m04kA/bookminton/internal/service/catalog"
	checkInUC "github.com/m04kA/bookminton/internal/usecase/check_in"
	createReservationUC "github.com/m04kA/bookminton/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/bookminton/internal/usecase/get_availability"
	quoteReservationUC "github.com/m04kA/bookminton/internal/usecase/quote_reservation"
	reconcileUC "github.com/m04kA/bookminton/internal/usecase/reconcile"
	"github.com/m04kA/bookminton/pkg/dbmetrics"
	"github.com/m04kA/bookminton/pkg/logger"
	"github.com/m04kA/bookminton/pkg/metrics"
	"github.com/m04kA/bookminton/pkg/txmanager"
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

	log.Info("Starting bookminton...")

	location, err := cfg.Arena.Location()
	if err != nil {
		log.Fatal("Invalid arena timezone %q: %v", cfg.Arena.Timezone, err)
	}

	// Контекст фоновых задач и SSE потоков, отменяется при остановке
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis: кэш доступности и отозванные токены
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	availabilityCache := cache.NewAvailabilityCache(redisClient, time.Duration(cfg.Redis.AvailabilityTTL)*time.Second)
	revocations := cache.NewRevocationStore(redisClient)
	log.Info("Redis connected (addr=%s, availability_ttl=%ds)", cfg.Redis.Addr, cfg.Redis.AvailabilityTTL)

	// Хранилище файлов
	files, err := objectstore.New(objectstore.Config{
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		UseSSL:        cfg.Storage.UseSSL,
		Region:        cfg.Storage.Region,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Fatal("Failed to create object store client: %v", err)
	}
	if err := files.EnsureBuckets(ctx, domain.BucketPaymentProofs, domain.BucketArenaAssets); err != nil {
		log.Fatal("Failed to prepare buckets: %v", err)
	}
	log.Info("Object store ready (endpoint=%s)", cfg.Storage.Endpoint)

	// Уведомления об изменениях бронирований
	publishers := []events.Publisher{pgnotify.NewPublisher(wrappedDB, cfg.Events.Channel)}
	if cfg.Events.RabbitEnabled {
		rabbit, err := rabbitmq.NewPublisher(cfg.Events.RabbitURL, cfg.Events.RabbitExchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbit.Close()
		publishers = append(publishers, rabbit)
		log.Info("RabbitMQ publisher enabled (exchange=%s)", cfg.Events.RabbitExchange)
	}
	publisher := events.NewMulti(log, publishers...)

	hub := pgnotify.NewHub(cfg.Database.DSN(), cfg.Events.Channel, log)
	go func() {
		if err := hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Booking events listener stopped: %v", err)
		}
	}()

	if cfg.Telegram.Enabled {
		notifier, err := telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.ChatID, log)
		if err != nil {
			log.Fatal("Failed to create Telegram client: %v", err)
		}
		staffEvents, unsubscribe := hub.Subscribe()
		defer unsubscribe()
		go notifier.Run(ctx, staffEvents)
		log.Info("Telegram notifications enabled (chat_id=%d)", cfg.Telegram.ChatID)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)
	courtRepository := courtRepo.NewRepository(wrappedDB)
	arenaRepository := arenaRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		courtRepository,
		arenaRepository,
		availabilityCache,
		publisher,
		metricsCollector,
		txMgr,
		location,
		log,
	)
	catalogSvc := catalogService.NewService(courtRepository, slotRepository, availabilityCache, txMgr, log)
	arenaSvc := arenaService.NewService(arenaRepository, files, log)
	authSvc := authService.NewService(
		userRepository,
		revocations,
		cfg.Auth,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL(),
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		courtRepository,
		slotRepository,
		bookingRepository,
		availabilityCache,
		log,
	)
	quoteReservationUseCase := quoteReservationUC.NewUseCase(courtRepository, slotRepository, arenaRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		courtRepository,
		slotRepository,
		bookingRepository,
		arenaRepository,
		files,
		availabilityCache,
		publisher,
		metricsCollector,
		txMgr,
		location,
		log,
	)
	checkInUseCase := checkInUC.NewUseCase(
		bookingRepository,
		availabilityCache,
		publisher,
		metricsCollector,
		location,
		log,
	)
	reconcileUseCase := reconcileUC.NewUseCase(slotRepository, availabilityCache, metricsCollector, txMgr, log)

	if cfg.Reconcile.IntervalSeconds > 0 {
		go reconcileUseCase.Run(ctx, time.Duration(cfg.Reconcile.IntervalSeconds)*time.Second)
		log.Info("Reconciliation sweep every %ds", cfg.Reconcile.IntervalSeconds)
	}

	// Инициализируем handlers
	getArena := getArenaHandler.NewHandler(arenaSvc, log)
	updateArena := updateArenaHandler.NewHandler(arenaSvc, log)
	arenaImages := arenaImagesHandler.NewHandler(arenaSvc, log)
	courts := courtsHandler.NewHandler(catalogSvc, log)
	slots := slotsHandler.NewHandler(catalogSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quoteReservation := quoteReservationHandler.NewHandler(quoteReservationUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReceipt := getReceiptHandler.NewHandler(bookingSvc, location, log)
	bookingQR := bookingQRHandler.NewHandler(bookingSvc, log)
	account := accountHandler.NewHandler(authSvc, log)
	myBookings := myBookingsHandler.NewHandler(bookingSvc, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingSvc, log)
	bookingEvents := bookingEventsHandler.NewHandler(hub, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	sessionCountdown := sessionCountdownHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(authSvc, log))

	// ============================================================
	// PUBLIC ROUTES (гость или клиент)
	// ============================================================

	api.HandleFunc("/arena", getArena.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts", courts.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	api.HandleFunc("/reservations/quote", quoteReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}/receipt", getReceipt.HandleJSON).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/receipt.pdf", getReceipt.HandlePDF).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/qr.png", bookingQR.Handle).Methods(http.MethodGet)

	api.HandleFunc("/auth/sign-up", account.HandleSignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-in", account.HandleSignIn).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (требуют токен)
	// ============================================================

	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.RequireSession)

	session.HandleFunc("/auth/session", account.HandleSession).Methods(http.MethodGet)
	session.HandleFunc("/auth/sign-out", account.HandleSignOut).Methods(http.MethodPost)
	session.HandleFunc("/me/bookings", myBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// --- Корты и расписание ---
	admin.HandleFunc("/courts", courts.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/courts/{courtId}", courts.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/courts/{courtId}", courts.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/courts/{courtId}/slots", slots.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/slots", slots.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}", slots.HandleDelete).Methods(http.MethodDelete)

	// --- Профиль арены ---
	admin.HandleFunc("/arena", updateArena.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/arena/logo", arenaImages.HandleLogo).Methods(http.MethodPut)
	admin.HandleFunc("/arena/qris", arenaImages.HandleQRIS).Methods(http.MethodPut)
	admin.HandleFunc("/arena/carousel", arenaImages.HandleAddCarousel).Methods(http.MethodPost)
	admin.HandleFunc("/arena/carousel/{imageId}", arenaImages.HandleDeleteCarousel).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", adminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/events", bookingEvents.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/session", sessionCountdown.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/check-in", checkIn.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Закрываем SSE потоки и фоновые задачи
	cancel()

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
