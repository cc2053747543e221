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

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HotelBooking/internal/api"
	adminBookingStatsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/admin_booking_stats"
	adminDeleteBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/admin_delete_booking"
	adminListBookingsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/admin_list_bookings"
	adminUpdateStatusHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/admin_update_status"
	cancelBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_booking"
	getRoomCalendarHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_room_calendar"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/health"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/config"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/cache/roomcache"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/events"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/storage/memory"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
	checkAvailabilityUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/create_booking"
	getRoomCalendarUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_room_calendar"
	"github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/txmanager"
)

// bookingStore всё, что use cases и сервисы требуют от хранилища бронирований
type bookingStore interface {
	createBookingUC.BookingRepository
	bookingsService.BookingRepository
	availability.BookingRepository
	getRoomCalendarUC.BookingRepository
}

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-HotelBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		bookings bookingStore
		rooms    createBookingUC.RoomRepository
		txMgr    txmanager.Manager
		pinger   healthHandler.Pinger
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
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

		// Без метрик обёртка просто проксирует вызовы
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		if metricsCollector != nil {
			log.Info("Database metrics collection started")
		}

		bookings = bookingRepo.NewRepository(wrappedDB)
		rooms = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.New(wrappedDB)
		pinger = wrappedDB

	case config.DriverMemory:
		store := memory.NewStore()
		store.SeedDemo()

		bookings = store
		rooms = store
		txMgr = txmanager.Noop{}
		log.Warn("Using in-memory storage: data is lost on restart")
	}

	// Redis: кэш комнат и распределённая блокировка, иначе блокировка в памяти процесса
	var locker createBookingUC.RoomLocker = lock.NewLocal()
	quoteRooms := rooms

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		// Бронирование читает комнату мимо кэша: цена в total_price всегда актуальна
		quoteRooms = roomcache.New(rooms, redisClient, time.Duration(cfg.Redis.RoomCacheTTL)*time.Second, log)
		locker = lock.NewRedis(redisClient, time.Duration(cfg.Redis.LockTTL)*time.Second, log)
		log.Info("Redis enabled (addr=%s): room cache ttl=%ds, lock ttl=%ds",
			cfg.Redis.Addr, cfg.Redis.RoomCacheTTL, cfg.Redis.LockTTL)
	}

	// RabbitMQ: события жизненного цикла бронирований
	var publisher createBookingUC.EventPublisher = events.Noop{}

	if cfg.RabbitMQ.Enabled {
		amqpPublisher, err := events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer amqpPublisher.Close()

		publisher = amqpPublisher
		log.Info("Booking events are published to exchange %s", cfg.RabbitMQ.Exchange)
	}

	// Инициализируем сервисы
	checker := availability.NewChecker(bookings, log)

	bookingSvc := bookingsService.NewService(
		bookings,
		checker,
		locker,
		txMgr,
		publisher,
		metricsCollector,
		cfg.Booking.EnforceTransitions(),
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookings,
		rooms,
		checker,
		locker,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(quoteRooms, checker, log)
	getRoomCalendarUseCase := getRoomCalendarUC.NewUseCase(bookings, quoteRooms, log)

	// Инициализируем handlers
	router := api.NewRouter(api.Handlers{
		Health:             healthHandler.NewHandler(pinger, log).Handle,
		CheckAvailability:  checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log).Handle,
		GetRoomCalendar:    getRoomCalendarHandler.NewHandler(getRoomCalendarUseCase, log).Handle,
		CreateBooking:      createBookingHandler.NewHandler(createBookingUseCase, log).Handle,
		GetUserBookings:    getUserBookingsHandler.NewHandler(bookingSvc, log).Handle,
		GetBooking:         getBookingHandler.NewHandler(bookingSvc, log).Handle,
		CancelBooking:      cancelBookingHandler.NewHandler(bookingSvc, log).Handle,
		AdminListBookings:  adminListBookingsHandler.NewHandler(bookingSvc, log).Handle,
		AdminBookingStats:  adminBookingStatsHandler.NewHandler(bookingSvc, log).Handle,
		AdminUpdateStatus:  adminUpdateStatusHandler.NewHandler(bookingSvc, log).Handle,
		AdminDeleteBooking: adminDeleteBookingHandler.NewHandler(bookingSvc, log).Handle,
	}, api.Options{
		Auth:           middleware.NewAuthenticator(cfg.Auth.JWTSecret, log),
		Logger:         log,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
		Metrics:        metricsCollector,
		MetricsPath:    cfg.Metrics.Path,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
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
