package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tiaraclaudya/inventory-service/internal/api/handlers"
	"github.com/tiaraclaudya/inventory-service/internal/api/middleware"
	"github.com/tiaraclaudya/inventory-service/internal/config"
	"github.com/tiaraclaudya/inventory-service/internal/health"
	"github.com/tiaraclaudya/inventory-service/internal/metrics"
	repository "github.com/tiaraclaudya/inventory-service/internal/repositories"
	service "github.com/tiaraclaudya/inventory-service/internal/services"
	"github.com/tiaraclaudya/inventory-service/internal/utils/response"
	"github.com/tiaraclaudya/inventory-service/pkg/userservice"
	"github.com/rs/cors"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Error detail in responses only outside production
	response.Debug = !cfg.IsProduction()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	slog.Info("Connected to database", slog.String("database", cfg.Database.Name))

	userClient := userservice.NewClient(cfg.UserService.BaseURL, cfg.UserService.Timeout)

	productService := service.NewProductService(repos.Product, cfg.Inventory.EnforceNonNegativeStock, cfg.Inventory.LowStockThreshold)
	productHandler := handlers.NewProductHandler(productService)
	categoryService := service.NewCategoryService(repos.Category)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	integrationService := service.NewUserIntegrationService(userClient, repos.Product)
	userHandler := handlers.NewUserHandler(integrationService)
	metaHandler := handlers.NewMetaHandler()

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error building health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("GET /{$}", metaHandler.Catalog())
	routerMux.HandleFunc("GET /health", metaHandler.Health())
	routerMux.Handle("GET /health/ready", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	routerMux.HandleFunc("GET /api/product", productHandler.ListProducts())
	routerMux.HandleFunc("POST /api/product", productHandler.CreateProduct())
	routerMux.HandleFunc("GET /api/product/search", productHandler.SearchProducts())
	routerMux.HandleFunc("GET /api/product/low-stock", productHandler.ListLowStockProducts())
	routerMux.HandleFunc("GET /api/product/price-range", productHandler.ListProductsByPriceRange())
	routerMux.HandleFunc("GET /api/product/statistics", productHandler.GetStatistics())
	routerMux.HandleFunc("GET /api/product/category/{categoryId}", productHandler.ListProductsByCategory())
	routerMux.HandleFunc("GET /api/product/code/{code}", productHandler.GetProductByCode())
	routerMux.HandleFunc("GET /api/product/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /api/product/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("PATCH /api/product/{id}/stock", productHandler.UpdateProductStock())
	routerMux.HandleFunc("DELETE /api/product/{id}", productHandler.DeleteProduct())

	routerMux.HandleFunc("GET /api/categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("POST /api/categories", categoryHandler.CreateCategory())
	routerMux.HandleFunc("GET /api/categories/with-count", categoryHandler.ListCategoriesWithCount())
	routerMux.HandleFunc("GET /api/categories/{id}", categoryHandler.GetCategory())
	routerMux.HandleFunc("PUT /api/categories/{id}", categoryHandler.UpdateCategory())
	routerMux.HandleFunc("DELETE /api/categories/{id}", categoryHandler.DeleteCategory())

	routerMux.HandleFunc("GET /api/user", userHandler.ListUsers())
	routerMux.HandleFunc("POST /api/user", userHandler.CreateUser())
	routerMux.HandleFunc("GET /api/user/search", userHandler.SearchUsers())
	routerMux.HandleFunc("GET /api/user/{id}", userHandler.GetUser())
	routerMux.HandleFunc("PUT /api/user/{id}", userHandler.UpdateUser())
	routerMux.HandleFunc("DELETE /api/user/{id}", userHandler.DeleteUser())
	routerMux.HandleFunc("GET /api/products/{productId}/creator/{userId}", userHandler.GetProductCreator())
	routerMux.HandleFunc("GET /api/health/user-service", userHandler.CheckUserServiceHealth())

	// Everything unmatched answers with the 404 envelope
	routerMux.HandleFunc("/", metaHandler.NotFound())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(routerMux)(handler)
	handler = middleware.Logging(handler)
	handler = cors.AllowAll().Handler(handler)

	// Setup http server
	server := http.Server{
		Addr:    ":" + cfg.HTTPServer.Port,
		Handler: handler,
	}

	slog.Info("Inventory service is starting...",
		slog.String("port", cfg.HTTPServer.Port),
		slog.String("env", cfg.Env),
		slog.String("user_service", cfg.UserService.BaseURL),
	)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown: drain in-flight requests before the pool closes
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

}
