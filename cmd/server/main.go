package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/priyanshi-bakery/storefront/internal/cache"
	"github.com/priyanshi-bakery/storefront/internal/config"
	"github.com/priyanshi-bakery/storefront/internal/handlers"
	"github.com/priyanshi-bakery/storefront/internal/middleware"
	"github.com/priyanshi-bakery/storefront/internal/queue"
	"github.com/priyanshi-bakery/storefront/internal/repository"
	"github.com/priyanshi-bakery/storefront/internal/service"
	"github.com/priyanshi-bakery/storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting bakery api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories: Postgres when reachable, in-memory otherwise
	var (
		productRepo repository.ProductRepository
		orderRepo   repository.OrderRepository
	)
	pg, err := repository.NewPostgresRepository(cfg.Database)
	if err != nil {
		log.Warn("postgres unavailable, using in-memory storage", "error", err)
		productRepo = repository.NewInMemoryProductRepository()
		orderRepo = repository.NewInMemoryOrderRepository()
	} else {
		defer pg.Close()
		if err := pg.RunMigrations(cfg.Database.MigrationsPath); err != nil {
			log.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		productRepo = pg
		orderRepo = pg
		log.Info("connected to postgres", "host", cfg.Database.Host, "database", cfg.Database.Name)
	}

	// Product cache is optional; the service degrades to the repository
	var productCache cache.ProductCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unavailable, running without cache", "error", err)
		} else {
			productCache = cache.NewRedisCache(client)
			log.Info("product cache enabled", "addr", cfg.Redis.Addr)
		}
	}

	// Order events feed the processing worker
	publisher := queue.NewPublisher(cfg.Kafka.Topic, cfg.Kafka.Brokers...)
	defer publisher.Close()

	// Initialize services
	productService := service.NewProductService(productRepo, productCache, log)
	orderService := service.NewOrderService(orderRepo, productRepo, publisher, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.ListProducts)
		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders/{orderId}", orderHandler.GetOrderStatus)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
