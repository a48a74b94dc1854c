package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 5 * time.Second

// poolSnapshot is the pool section of the /health/db payload.
type poolSnapshot struct {
	InUseConns  int32  `json:"in_use_conns"`
	IdleConns   int32  `json:"idle_conns"`
	MaxConns    int32  `json:"max_conns"`
	AcquireWait string `json:"acquire_wait"`
}

func snapshotPool(pool *pgxpool.Pool) poolSnapshot {
	stat := pool.Stat()
	return poolSnapshot{
		InUseConns:  stat.AcquiredConns(),
		IdleConns:   stat.IdleConns(),
		MaxConns:    stat.MaxConns(),
		AcquireWait: stat.AcquireDuration().String(),
	}
}

// HealthHandler serves /health/db. The payload mirrors /health's
// {"status": ...} shape with the pool snapshot attached; a failed ping
// answers 503.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unavailable",
				"error":  err.Error(),
				"pool":   snapshotPool(pool),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
			"pool":   snapshotPool(pool),
		})
	}
}
