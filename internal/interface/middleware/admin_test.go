package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jannofresh/jannofresh-api/config"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/infrastructure/memory"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
)

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	users := memory.NewUserRepository()
	require.NoError(t, users.Create(ctx, &entity.User{ID: "admin-1", Name: "Boss", Email: "boss@jannofresh.dev"}))
	require.NoError(t, users.Create(ctx, &entity.User{ID: "cust-1", Name: "Anna", Email: "anna@example.com"}))

	cfg := &config.Config{AdminEmails: "boss@jannofresh.dev"}
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	r := gin.New()
	r.GET("/api/admin/ping", Auth(jwt), AdminOnly(users, cfg, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	call := func(userID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		if userID != "" {
			token, err := jwt.Issue(userID)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, call("admin-1").Code)

	w := call("cust-1")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Admin access required"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, call("").Code)

	// A valid token whose record has vanished cannot reach admin routes.
	assert.Equal(t, http.StatusNotFound, call("ghost").Code)
}
