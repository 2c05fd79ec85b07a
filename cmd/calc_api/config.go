package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/strcalc/internal/api/server"
	"github.com/DjordjeVuckovic/strcalc/internal/history/factory"
	"github.com/DjordjeVuckovic/strcalc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcApiConfig struct {
	LogLevel      slog.Level
	ServerConfig  *server.Config
	StorageConfig *factory.StorageConfig
}

func (as *AppConfig) Load() (*CalcApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	return &CalcApiConfig{
		LogLevel:      env.LogLevel("LOG_LEVEL", slog.LevelInfo),
		ServerConfig:  serverCfg,
		StorageConfig: storageCfg,
	}, nil
}
