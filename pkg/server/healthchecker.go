package server

import (
	"context"
	"log/slog"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHealthChecker is healthy while every dependency answers Ping.
type PingHealthChecker struct {
	deps map[string]Pinger
}

func NewPingHealthChecker(deps map[string]Pinger) *PingHealthChecker {
	return &PingHealthChecker{deps: deps}
}

func (hc *PingHealthChecker) Healthy(ctx context.Context) bool {
	healthy := true
	for name, dep := range hc.deps {
		if err := dep.Ping(ctx); err != nil {
			slog.Warn("Dependency is unhealthy", "dependency", name, "error", err)
			healthy = false
		}
	}
	return healthy
}
