package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/config"
	gatewayClient "github.com/m04kA/ShareIt-RentalService/internal/gateway/client"
	gatewayHandlers "github.com/m04kA/ShareIt-RentalService/internal/gateway/handlers"
	"github.com/m04kA/ShareIt-RentalService/pkg/logger"
	"github.com/m04kA/ShareIt-RentalService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadGateway("gateway.toml")
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

	log.Info("Starting ShareIt-Gateway...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент server-модуля
	upstream := gatewayClient.NewClient(
		cfg.Upstream.URL,
		time.Duration(cfg.Upstream.Timeout)*time.Second,
		log,
	)
	log.Info("Upstream configured: %s (timeout=%ds)", cfg.Upstream.URL, cfg.Upstream.Timeout)

	h := gatewayHandlers.NewHandler(upstream, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Маршруты с валидацией на границе
	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/owner", h.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/items", h.ProxyPaginated).Methods(http.MethodGet)
	api.HandleFunc("/items/search", h.ProxyPaginated).Methods(http.MethodGet)
	api.HandleFunc("/requests/all", h.ProxyPaginated).Methods(http.MethodGet)

	// Пользователи обслуживаются без заголовка X-Sharer-User-Id
	api.PathPrefix("/users").HandlerFunc(h.Proxy)

	// Остальные маршруты требуют только заголовок
	api.PathPrefix("/").HandlerFunc(h.ProxyAuthorized)

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
		log.Info("Starting gateway on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Gateway failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gateway...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Gateway forced to shutdown: %v", err)
	}

	log.Info("Gateway stopped gracefully")
}
