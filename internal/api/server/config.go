package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/strcalc/pkg/config/env"
	"github.com/DjordjeVuckovic/strcalc/pkg/utils"
)

const (
	DefaultPort           = "8080"
	DefaultRateLimitRPM   = 600
	DefaultRateLimitBurst = 20
)

type Config struct {
	Port           string
	UseHttp2       bool
	CorsOrigins    []string
	RateLimitRPM   int
	RateLimitBurst int
}

// LoadConfig reads the server settings from the environment; call
// env.LoadDotEnv first to pick up a .env file.
func LoadConfig() (*Config, error) {
	port := env.GetString("PORT", DefaultPort)
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	rpm, err := env.GetInt("RATE_LIMIT_RPM", DefaultRateLimitRPM)
	if err != nil || rpm < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPM: must be a positive number")
	}

	burst, err := env.GetInt("RATE_LIMIT_BURST", DefaultRateLimitBurst)
	if err != nil || burst < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: must be a positive number")
	}

	origins := utils.SplitAndTrim(env.GetString("CORS_ORIGINS", ""), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	cfg := &Config{
		Port:           port,
		UseHttp2:       env.GetBool("USE_HTTP2"),
		CorsOrigins:    origins,
		RateLimitRPM:   rpm,
		RateLimitBurst: burst,
	}
	slog.Debug("Server config loaded", "port", cfg.Port, "http2", cfg.UseHttp2, "rpm", cfg.RateLimitRPM)

	return cfg, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
