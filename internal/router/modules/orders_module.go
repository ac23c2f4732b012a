package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jannofresh/jannofresh-api/internal/container"
	handlers "github.com/jannofresh/jannofresh-api/internal/interface/http"
	"github.com/jannofresh/jannofresh-api/internal/interface/middleware"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
)

type OrdersModule struct {
	Handler *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewOrdersModule(h *handlers.OrderHandler, jwt *helpers.JWTManager) *OrdersModule {
	return &OrdersModule{Handler: h, JWT: jwt}
}

func (m *OrdersModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/orders", m.Handler.Checkout)
		auth.GET("/orders", m.Handler.ListMine)
		auth.GET("/orders/:id", m.Handler.Get)
	}
}
