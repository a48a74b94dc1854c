package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/portal/portal/internal/platform/auth"
)

// Logger emits one structured log line per request after the handler
// chain completes. Failed requests log at error level with the error
// attached. The resolved principal is included once the auth
// middleware has run, so write attribution is visible in the logs.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			evt = evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Int64("bytes_out", c.Response().Size).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())

			if principal, ok := auth.PrincipalFromContext(c.Request().Context()); ok {
				evt = evt.Int64("principal", principal)
			}

			evt.Msg("request")

			return err
		}
	}
}
