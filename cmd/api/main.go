package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expensetracker/internal/config"
	"expensetracker/internal/database"
	"expensetracker/internal/handlers"
	"expensetracker/internal/middleware"
	"expensetracker/internal/repositories"
	"expensetracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	if err := prepareSchema(cfg, db); err != nil {
		slog.Error("failed to prepare database schema", "error", err.Error())
		os.Exit(1)
	}
	if err := db.EnsureDefaults(); err != nil {
		slog.Error("failed to seed defaults", "error", err.Error())
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	goalRepo := repositories.NewGoalRepository(db.DB)
	assetRepo := repositories.NewAssetRepository(db.DB)
	liabilityRepo := repositories.NewLiabilityRepository(db.DB)
	snapshotRepo := repositories.NewSnapshotRepository(db.DB)
	settingsRepo := repositories.NewSettingsRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	dashboardService := services.NewDashboardService(transactionRepo, categoryRepo, settingsRepo, metrics, nil)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, metrics)
	categoryService := services.NewCategoryService(categoryRepo)
	goalService := services.NewGoalService(goalRepo, metrics, nil)
	netWorthService := services.NewNetWorthService(assetRepo, liabilityRepo, snapshotRepo, transactionRepo, metrics, cfg.Analytics.TrendMonths, nil)
	settingsService := services.NewSettingsService(settingsRepo)
	recurringService := services.NewRecurringService(transactionRepo, metrics, nil)

	// Materialize any recurring transactions that came due while the
	// process was down
	if spawned, err := recurringService.ProcessDue(); err != nil {
		slog.Error("recurring processing failed at startup", "error", err.Error())
	} else if spawned > 0 {
		slog.Info("recurring transactions materialized at startup", "spawned", spawned)
	}

	e := buildRouter(cfg, db, dashboardService, transactionService, categoryService, goalService, netWorthService, settingsService)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err.Error())
	}
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

// prepareSchema runs SQL migrations when AUTO_MIGRATE is set, otherwise
// falls back to gorm automigration.
func prepareSchema(cfg *config.Config, db *database.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		return db.AutoMigrate()
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	runner := database.NewMigrationRunner(sqlDB, cfg.Database.Driver)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}
	if err := runner.RunMigrations(); err != nil {
		return err
	}
	return runner.LoadSeeds()
}

func buildRouter(
	cfg *config.Config,
	db *database.DB,
	dashboardService services.DashboardServiceInterface,
	transactionService services.TransactionServiceInterface,
	categoryService services.CategoryServiceInterface,
	goalService services.GoalServiceInterface,
	netWorthService services.NetWorthServiceInterface,
	settingsService services.SettingsServiceInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	goalHandler := handlers.NewGoalHandler(goalService)
	netWorthHandler := handlers.NewNetWorthHandler(netWorthService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	dashboard := api.Group("/dashboard")
	dashboard.GET("/stats", dashboardHandler.GetStats)
	dashboard.GET("/score", dashboardHandler.GetScore)
	dashboard.GET("/forecast", dashboardHandler.GetForecast)
	dashboard.GET("/comparison", dashboardHandler.GetComparison)
	dashboard.GET("/trend", dashboardHandler.GetTrend)
	dashboard.GET("/insights", dashboardHandler.GetInsights)
	dashboard.GET("/achievements", dashboardHandler.GetAchievements)

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	api.GET("/goals", goalHandler.ListGoals)
	api.POST("/goals", goalHandler.CreateGoal)
	api.GET("/goals/projections", goalHandler.ListProjections)
	api.PUT("/goals/:id", goalHandler.UpdateGoal)
	api.DELETE("/goals/:id", goalHandler.DeleteGoal)
	api.POST("/goals/:id/deposit", goalHandler.Deposit)

	api.GET("/networth", netWorthHandler.GetSummary)
	api.POST("/networth/snapshots", netWorthHandler.RecordSnapshot)
	api.GET("/networth/assets", netWorthHandler.ListAssets)
	api.POST("/networth/assets", netWorthHandler.CreateAsset)
	api.DELETE("/networth/assets/:id", netWorthHandler.DeleteAsset)
	api.GET("/networth/liabilities", netWorthHandler.ListLiabilities)
	api.POST("/networth/liabilities", netWorthHandler.CreateLiability)
	api.DELETE("/networth/liabilities/:id", netWorthHandler.DeleteLiability)

	api.GET("/settings", settingsHandler.GetSettings)
	api.PUT("/settings", settingsHandler.UpdateSetting)

	return e
}
