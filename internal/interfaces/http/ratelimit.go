package http

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/componentes-api/internal/application/dto"
	"github.com/jhoicas/componentes-api/internal/infrastructure/metrics"
)

// LoginRateLimiterConfig límite de intentos de login por IP.
type LoginRateLimiterConfig struct {
	PerMinute       int
	Burst           int
	CleanupInterval time.Duration // limpieza de entradas sin uso
}

type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LoginRateLimiter limita los intentos de login por dirección IP.
type LoginRateLimiter struct {
	limit     rate.Limit
	perMinute int
	burst     int
	ttl       time.Duration
	metrics   MetricsRecorder

	mu       sync.Mutex
	limiters map[string]*ipLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewLoginRateLimiter crea el limitador y arranca la limpieza en segundo plano.
// Llamar Stop al apagar. rec puede ser nil.
func NewLoginRateLimiter(cfg LoginRateLimiterConfig, rec MetricsRecorder) *LoginRateLimiter {
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	rl := &LoginRateLimiter{
		limit:     rate.Limit(float64(cfg.PerMinute) / 60.0),
		perMinute: cfg.PerMinute,
		burst:     cfg.Burst,
		ttl:       cfg.CleanupInterval * 2,
		metrics:   rec,
		limiters:  make(map[string]*ipLimiter),
		stopCh:    make(chan struct{}),
	}
	go rl.cleanupLoop(cfg.CleanupInterval)
	return rl
}

// Stop detiene la limpieza en segundo plano.
func (rl *LoginRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware responde 429 con Retry-After cuando la IP agotó sus intentos.
func (rl *LoginRateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl.limiterFor(c.IP()).Allow() {
			return c.Next()
		}
		rl.metrics.RecordLogin(metrics.LoginRateLimited)
		// segundos hasta reponer un intento
		retryAfter := int(math.Ceil(60.0 / float64(rl.perMinute)))
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
			Code:    "RATE_LIMITED",
			Message: "demasiados intentos de login, intente más tarde",
		})
	}
}

// Len número de IPs con limitador activo.
func (rl *LoginRateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *LoginRateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	l, ok := rl.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = l
	}
	l.lastAccess = time.Now()
	return l.limiter
}

func (rl *LoginRateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *LoginRateLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, l := range rl.limiters {
		if now.Sub(l.lastAccess) > rl.ttl {
			delete(rl.limiters, ip)
		}
	}
}
