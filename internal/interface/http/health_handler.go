package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jannofresh/jannofresh-api/config"
	pginfra "github.com/jannofresh/jannofresh-api/internal/infrastructure/postgres"
	"github.com/jannofresh/jannofresh-api/internal/infrastructure/store"
)

// HealthHandler reports liveness, which critical settings are present, and
// the active storage mode, so operators can tell a degraded in-memory
// deployment apart from a healthy one. Secret values are never echoed, only
// their presence.
type HealthHandler struct {
	Cfg  *config.Config
	Pool *pgxpool.Pool // nil in memory mode
}

func NewHealthHandler(cfg *config.Config, pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{Cfg: cfg, Pool: pool}
}

// Health GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	mode := store.ModeMemory
	db := "memory"
	if h.Pool != nil {
		mode = store.ModePostgres
		db = "connected"
		if err := pginfra.Ping(c.Request.Context(), h.Pool); err != nil {
			db = "disconnected"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"env": gin.H{
			"DATABASE_URL":   !h.Cfg.MemoryMode(),
			"JWT_SECRET":     h.Cfg.JWTSecret != "",
			"PUBLIC_API_URL": h.Cfg.PublicAPIURL != "",
		},
		"mode": mode,
		"db":   db,
	})
}
