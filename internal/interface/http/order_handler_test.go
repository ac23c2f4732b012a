package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jannofresh/jannofresh-api/internal/application"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/infrastructure/store"
	"github.com/jannofresh/jannofresh-api/internal/interface/middleware"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
)

// newStorefront wires auth and orders against the in-memory stores and
// returns a registered user's token alongside the router.
func newStorefront(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	users := store.NewUserStore(nil, nil)

	authSvc := application.NewAuthService(users, jwt, nil, nil, "JannoFresh", false)
	orderSvc := application.NewOrderService(
		store.NewOrderStore(nil, nil),
		store.NewProductStore(nil, nil),
		users, nil, nil, 2.50, false,
	)
	oh := NewOrderHandler(orderSvc, nil, false)

	r := gin.New()
	auth := r.Group("/api", middleware.Auth(jwt))
	auth.POST("/orders", oh.Checkout)
	auth.GET("/orders", oh.ListMine)
	auth.GET("/orders/:id", oh.Get)

	ctx := context.Background()
	u, token, err := authSvc.Register(ctx, application.RegisterInput{
		Name: "Anna", Email: "anna@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	return r, token
}

func authHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}

func TestCheckoutEndpoint(t *testing.T) {
	r, token := newStorefront(t)

	body := `{"items":[{"productId":"p1","quantity":2}],"address":"12 Garden Street"}`
	w := doJSON(r, http.MethodPost, "/api/orders", body, authHeader(token))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string       `json:"message"`
		Order   entity.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order placed successfully", resp.Message)
	assert.InDelta(t, 7.50, resp.Order.Total, 0.001) // 2 x 2.50 + 2.50 delivery
	assert.Equal(t, entity.StatusConfirmed, resp.Order.Status)
	assert.NotEmpty(t, resp.Order.Timeline)
}

func TestCheckoutEndpointRequiresAuth(t *testing.T) {
	r, _ := newStorefront(t)

	body := `{"items":[{"productId":"p1","quantity":1}],"address":"12 Garden Street"}`
	w := doJSON(r, http.MethodPost, "/api/orders", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutEndpointValidation(t *testing.T) {
	r, token := newStorefront(t)

	w := doJSON(r, http.MethodPost, "/api/orders", `{"items":[],"address":"x"}`, authHeader(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Order must contain at least one item"}`, w.Body.String())
}

func TestOrderListAndGet(t *testing.T) {
	r, token := newStorefront(t)

	body := `{"items":[{"productId":"p1","quantity":1}],"address":"12 Garden Street"}`
	w := doJSON(r, http.MethodPost, "/api/orders", body, authHeader(token))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Order entity.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodGet, "/api/orders", "", authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	var orders []entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)

	w = doJSON(r, http.MethodGet, "/api/orders/"+created.Order.ID, "", authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/orders/JF-00000", "", authHeader(token))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
