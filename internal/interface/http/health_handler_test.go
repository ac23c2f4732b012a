package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jannofresh/jannofresh-api/config"
)

func TestHealthMemoryMode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", PublicAPIURL: "/api"}
	h := NewHealthHandler(cfg, nil)

	r := gin.New()
	r.GET("/api/health", h.Health)

	w := doJSON(r, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK  bool `json:"ok"`
		Env struct {
			DatabaseURL  bool `json:"DATABASE_URL"`
			JWTSecret    bool `json:"JWT_SECRET"`
			PublicAPIURL bool `json:"PUBLIC_API_URL"`
		} `json:"env"`
		Mode string `json:"mode"`
		DB   string `json:"db"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.False(t, resp.Env.DatabaseURL)
	assert.True(t, resp.Env.JWTSecret)
	assert.True(t, resp.Env.PublicAPIURL)
	assert.Equal(t, "memory", resp.Mode)
	assert.Equal(t, "memory", resp.DB)

	// Configured values must never be echoed, only their presence.
	assert.NotContains(t, w.Body.String(), "test-secret")
	assert.NotContains(t, w.Body.String(), "/api")
}
