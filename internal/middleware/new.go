package middleware

import (
	"github.com/prometheus/client_golang/prometheus"

	"product-catalog-api/pkg/log"
)

// Config carries the tunables of the HTTP middleware chain.
type Config struct {
	// CORS
	AllowedOrigins []string

	// Rate limiting per client IP. RequestsPerMin <= 0 disables it.
	RequestsPerMin int
	Burst          int

	// Registry receives the HTTP metrics. Nil creates a private registry.
	Registry *prometheus.Registry
}

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	limiter        *rateLimiter
	metrics        *httpMetrics
}

func New(l log.Logger, cfg Config) Middleware {
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return Middleware{
		l:              l,
		allowedOrigins: cfg.AllowedOrigins,
		limiter:        newRateLimiter(cfg.RequestsPerMin, cfg.Burst),
		metrics:        newHTTPMetrics(reg),
	}
}
