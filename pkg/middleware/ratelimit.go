package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// LimiterMap keeps one token bucket per client IP and forgets idle clients after ttl.
type LimiterMap struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rpm      int
	burst    int
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewLimiterMap(rpm, burst int, ttl time.Duration) *LimiterMap {
	lm := &LimiterMap{
		limiters: make(map[string]*limiterEntry),
		rpm:      rpm,
		burst:    burst,
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go lm.reaper()
	return lm
}

func (l *LimiterMap) reaper() {
	t := time.NewTicker(l.ttl)
	defer t.Stop()
	for {
		select {
		case <-l.stopCh:
			return
		case now := <-t.C:
			l.evictIdle(now)
		}
	}
}

func (l *LimiterMap) evictIdle(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, e := range l.limiters {
		if now.Sub(e.last) > l.ttl {
			delete(l.limiters, ip)
		}
	}
}

func (l *LimiterMap) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *LimiterMap) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.limiters[ip]; ok {
		e.last = time.Now()
		return e.limiter.Allow()
	}

	lim := rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.rpm)), l.burst)
	l.limiters[ip] = &limiterEntry{limiter: lim, last: time.Now()}
	return lim.Allow()
}

func (l *LimiterMap) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// RateLimit rejects requests over the per-IP budget with 429.
func RateLimit(lm *LimiterMap) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !lm.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limited")
			}
			return next(c)
		}
	}
}
