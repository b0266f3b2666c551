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

	addCommentHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/add_comment"
	createBookingHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/create_booking"
	createItemHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/create_item"
	createRequestHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/create_request"
	createUserHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/create_user"
	decideBookingHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/decide_booking"
	deleteItemHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/delete_item"
	deleteUserHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/delete_user"
	getAllRequestsHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/get_all_requests"
	getBookingHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/get_booking"
	getItemHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/get_item"
	getOwnRequestsHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/get_own_requests"
	getOwnerBookingsHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/get_owner_bookings"
	getRequestHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/get_request"
	getUserHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/get_user_bookings"
	listItemsHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/list_items"
	listUsersHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/list_users"
	searchItemsHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/search_items"
	updateItemHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/update_item"
	updateUserHandler "github.com/m04kA/ShareIt-RentalService/internal/api/handlers/update_user"
	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/config"
	bookingRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/booking"
	commentRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/comment"
	itemRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/item"
	requestRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/request"
	userRepo "github.com/m04kA/ShareIt-RentalService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/ShareIt-RentalService/internal/service/bookings"
	commentsService "github.com/m04kA/ShareIt-RentalService/internal/service/comments"
	itemsService "github.com/m04kA/ShareIt-RentalService/internal/service/items"
	requestsService "github.com/m04kA/ShareIt-RentalService/internal/service/requests"
	usersService "github.com/m04kA/ShareIt-RentalService/internal/service/users"
	"github.com/m04kA/ShareIt-RentalService/pkg/dbmetrics"
	"github.com/m04kA/ShareIt-RentalService/pkg/logger"
	"github.com/m04kA/ShareIt-RentalService/pkg/metrics"
	"github.com/m04kA/ShareIt-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/ShareIt-RentalService/pkg/txmanager"
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

	log.Info("Starting ShareIt-RentalService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		itemRepository    *itemRepo.Repository
		userRepository    *userRepo.Repository
		requestRepository *requestRepo.Repository
		commentRepository *commentRepo.Repository
		txMgr             bookingsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		itemRepository = itemRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		requestRepository = requestRepo.NewRepository(wrappedDB)
		commentRepository = commentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		itemRepository = itemRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		requestRepository = requestRepo.NewRepository(db)
		commentRepository = commentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	userSvc := usersService.NewService(userRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, userRepository, itemRepository, txMgr, log)
	itemSvc := itemsService.NewService(itemRepository, userRepository, bookingSvc, commentRepository, log)
	requestSvc := requestsService.NewService(requestRepository, userRepository, itemRepository, log)
	commentSvc := commentsService.NewService(commentRepository, userRepository, itemRepository, bookingRepository, log)

	// Инициализируем handlers
	createUser := createUserHandler.NewHandler(userSvc, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)

	createItem := createItemHandler.NewHandler(itemSvc, log)
	updateItem := updateItemHandler.NewHandler(itemSvc, log)
	getItem := getItemHandler.NewHandler(itemSvc, log)
	listItems := listItemsHandler.NewHandler(itemSvc, log)
	searchItems := searchItemsHandler.NewHandler(itemSvc, log)
	deleteItem := deleteItemHandler.NewHandler(itemSvc, log)
	addComment := addCommentHandler.NewHandler(commentSvc, log)

	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	decideBooking := decideBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)

	createRequest := createRequestHandler.NewHandler(requestSvc, log)
	getOwnRequests := getOwnRequestsHandler.NewHandler(requestSvc, log)
	getAllRequests := getAllRequestsHandler.NewHandler(requestSvc, log)
	getRequest := getRequestHandler.NewHandler(requestSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без заголовка X-Sharer-User-Id)
	// ============================================================

	api.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", updateUser.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Sharer-User-Id header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Вещи ---
	protected.HandleFunc("/items", createItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/items", listItems.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/search", searchItems.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", getItem.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", updateItem.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/items/{itemId}", deleteItem.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/items/{itemId}/comment", addComment.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/owner", getOwnerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", decideBooking.Handle).Methods(http.MethodPatch)

	// --- Запросы вещей ---
	protected.HandleFunc("/requests", createRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/requests", getOwnRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/all", getAllRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
