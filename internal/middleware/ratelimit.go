package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"urlhealth/internal/config"
)

// bypassHeader lets load tests opt out of limiting when the configured
// secret matches. Comparison is constant-time so the header cannot be used
// as an oracle for the secret.
const bypassHeader = "X-Rate-Limit-Bypass"

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

// RateLimit puts a per-client-IP token bucket in front of every route.
// Stale buckets expire after cfg.ExpireMinutes so the store does not grow
// with one entry per IP ever seen.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RPS),
		Burst:     cfg.Burst,
		ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
	})

	secret := []byte(cfg.BypassSecret)
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if len(secret) == 0 {
				return false
			}
			header := []byte(c.Request().Header.Get(bypassHeader))
			return subtle.ConstantTimeCompare(header, secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("path", c.Path()))
			c.Response().Header().Set("Retry-After", "1")
			return c.JSON(http.StatusTooManyRequests, rateLimitResponse{
				Error:      "rate limit exceeded",
				RetryAfter: 1,
			})
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError,
				map[string]string{"error": "internal server error"})
		},
	})
}
