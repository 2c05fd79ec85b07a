// Package main String Calculator API
// @title String Calculator API
// @version 1.0
// @description Sums delimited strings of integers with custom delimiter headers, negative number validation and a history of evaluations.
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/strcalc/docs"
	"github.com/DjordjeVuckovic/strcalc/internal/api/router"
	"github.com/DjordjeVuckovic/strcalc/internal/api/server"
	"github.com/DjordjeVuckovic/strcalc/internal/calculator"
	"github.com/DjordjeVuckovic/strcalc/internal/history/factory"
	pkgserver "github.com/DjordjeVuckovic/strcalc/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	store, err := factory.NewStore(context.Background(), *cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create history store", "type", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("History store ready", "type", cfg.StorageConfig.Type)

	s := server.New(cfg.ServerConfig, pkgserver.NewPingHealthChecker(map[string]pkgserver.Pinger{
		"history": store,
	})).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "String Calculator API is running")
	})

	calcRouter := router.NewCalcRouter(s.Echo, calculator.New(), store)
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
