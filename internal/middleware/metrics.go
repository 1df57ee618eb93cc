package middleware

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"urlhealth/internal/metrics"
)

// HTTPRecorder receives one metric per completed request.
type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics times every request and hands the result to the recorder. For
// handlers that returned an echo.HTTPError the error's code wins over the
// response status, which echo may not have written yet.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			m := metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       c.Path(),
				StatusCode: c.Response().Status,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
			}
			if m.Path == "" {
				m.Path = "/"
			}
			if err != nil {
				m.Error = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					m.StatusCode = he.Code
				}
			}

			recorder.RecordHTTP(m)
			return err
		}
	}
}
