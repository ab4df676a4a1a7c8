package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiconfig "golang-stock-catalog/internal/api/config"
	delivery "golang-stock-catalog/internal/api/delivery/http"
	_ "golang-stock-catalog/internal/api/docs"
	"golang-stock-catalog/internal/api/repository"
	"golang-stock-catalog/internal/api/service"
	"golang-stock-catalog/internal/entity"
	"golang-stock-catalog/pkg/database"
	"golang-stock-catalog/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the stock catalog API service",
	Run:   runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seeds the database with the sample stock catalog",
	Run:   runSeed,
}

// openStore wires config through the database connection, creates the schema
// and returns the stock service plus a connection cleanup func.
func openStore(cfg *apiconfig.Config, appLogger *logger.Logger) (service.StockService, func(), error) {
	db, err := database.New(database.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := db.DB.AutoMigrate(&entity.Stock{}); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	stockRepo := repository.NewStockRepository(db.DB)
	return service.NewStockService(stockRepo, appLogger), cleanup, nil
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := apiconfig.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting stock catalog API", logger.Field("name", cfg.App.Name))

	stockSvc, cleanup, err := openStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	defer cleanup()

	authSvc := service.NewAuthService(cfg.Auth)

	e := echo.New()
	e.HideBanner = true
	e.Validator = delivery.NewRequestValidator()

	stockHandler := delivery.NewStockHandler(stockSvc, appLogger)
	stockHandler.RegisterRoutes(e.Group("/stocks"))

	authHandler := delivery.NewAuthHandler(authSvc, appLogger)
	authHandler.RegisterRoutes(e.Group(""))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/swagger/*", swagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runSeed(cmd *cobra.Command, args []string) {
	cfg, err := apiconfig.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	stockSvc, cleanup, err := openStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	defer cleanup()

	if err := stockSvc.SeedDefaultStocks(context.Background()); err != nil {
		appLogger.Fatal("Failed to seed stocks", logger.ErrorField(err))
	}

	appLogger.Info("Database seeded successfully")
}

// @title Stock Catalog API
// @version 0.0.1
// @description CRUD service for a stock ticker catalog.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{Use: "stock-catalog-api"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing stock-catalog-api CLI: %s\n", err)
		os.Exit(1)
	}
}
