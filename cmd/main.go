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

	cancelReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_reservation"
	createGuestHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_guest"
	createPaymentPreferenceHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_payment_preference"
	createReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_reservation"
	createRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_room"
	deleteGuestHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/delete_guest"
	deleteReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/delete_reservation"
	deleteRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/delete_room"
	getAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_availability"
	getGuestHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_guest"
	getPaymentHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_payment"
	getPaymentByReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_payment_by_reservation"
	getReservationHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_reservation"
	getRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room"
	listGuestsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_guests"
	listReservationsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_rooms"
	paymentWebhookHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/payment_webhook"
	updateGuestHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_guest"
	updateReservationStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_reservation_status"
	updateRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	guestRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/guest"
	paymentRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mailer"
	"github.com/m04kA/SMC-HotelService/internal/integrations/mercadopago"
	guestsService "github.com/m04kA/SMC-HotelService/internal/service/guests"
	paymentsService "github.com/m04kA/SMC-HotelService/internal/service/payments"
	reservationsService "github.com/m04kA/SMC-HotelService/internal/service/reservations"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	checkAvailabilityUC "github.com/m04kA/SMC-HotelService/internal/usecase/check_availability"
	createPaymentPreferenceUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_payment_preference"
	createReservationUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_reservation"
	processPaymentWebhookUC "github.com/m04kA/SMC-HotelService/internal/usecase/process_payment_webhook"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
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

	log.Info("Starting SMC-HotelService...")
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

	// Инициализируем интеграционных клиентов
	mpClient := mercadopago.NewClient(mercadopago.Options{
		BaseURL:         cfg.MercadoPago.BaseURL,
		AccessToken:     cfg.MercadoPago.AccessToken,
		Timeout:         time.Duration(cfg.MercadoPago.Timeout) * time.Second,
		NotificationURL: cfg.MercadoPago.NotificationURL,
		BackURLBase:     cfg.MercadoPago.BackURLBase,
		StatementLabel:  cfg.MercadoPago.StatementLabel,
		CurrencyID:      cfg.MercadoPago.CurrencyID,
	}, log)
	mailClient := mailer.NewClient(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From, log)
	log.Info("Integration clients initialized (MercadoPago=%s timeout=%ds, SMTP=%s:%d)",
		cfg.MercadoPago.BaseURL, cfg.MercadoPago.Timeout, cfg.SMTP.Host, cfg.SMTP.Port)

	// Инициализируем репозитории (с метриками или без)
	var (
		roomRepository        *roomRepo.Repository
		reservationRepository *reservationRepo.Repository
		paymentRepository     *paymentRepo.Repository
		guestRepository       *guestRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		guestRepository = guestRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		guestRepository = guestRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	roomsSvc := roomsService.NewService(roomRepository, reservationRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	guestsSvc := guestsService.NewService(guestRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, mpClient, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(roomRepository, reservationRepository, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		mailClient,
		txMgr,
		log,
	)
	createPaymentPreferenceUseCase := createPaymentPreferenceUC.NewUseCase(
		paymentRepository,
		roomRepository,
		mpClient,
		log,
	)
	processPaymentWebhookUseCase := processPaymentWebhookUC.NewUseCase(
		paymentRepository,
		reservationRepository,
		roomRepository,
		mpClient,
		mailClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	getRoom := getRoomHandler.NewHandler(roomsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createRoom := createRoomHandler.NewHandler(roomsSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomsSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomsSvc, log)

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)

	createGuest := createGuestHandler.NewHandler(guestsSvc, log)
	listGuests := listGuestsHandler.NewHandler(guestsSvc, log)
	getGuest := getGuestHandler.NewHandler(guestsSvc, log)
	updateGuest := updateGuestHandler.NewHandler(guestsSvc, log)
	deleteGuest := deleteGuestHandler.NewHandler(guestsSvc, log)

	createPaymentPreference := createPaymentPreferenceHandler.NewHandler(createPaymentPreferenceUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(processPaymentWebhookUseCase, log)
	getPayment := getPaymentHandler.NewHandler(paymentsSvc, log)
	getPaymentByReservation := getPaymentByReservationHandler.NewHandler(paymentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	registerRoutes(r, apiHandlers{
		listRooms:       listRooms.Handle,
		createRoom:      createRoom.Handle,
		getRoom:         getRoom.Handle,
		updateRoom:      updateRoom.Handle,
		deleteRoom:      deleteRoom.Handle,
		getAvailability: getAvailability.Handle,

		createReservation:       createReservation.Handle,
		listReservations:        listReservations.Handle,
		getReservation:          getReservation.Handle,
		updateReservationStatus: updateReservationStatus.Handle,
		cancelReservation:       cancelReservation.Handle,
		deleteReservation:       deleteReservation.Handle,

		createGuest: createGuest.Handle,
		listGuests:  listGuests.Handle,
		getGuest:    getGuest.Handle,
		updateGuest: updateGuest.Handle,
		deleteGuest: deleteGuest.Handle,

		createPaymentPreference: createPaymentPreference.Handle,
		paymentWebhook:          paymentWebhook.Handle,
		getPayment:              getPayment.Handle,
		getPaymentByReservation: getPaymentByReservation.Handle,
	})

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
