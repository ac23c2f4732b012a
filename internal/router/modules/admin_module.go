package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/jannofresh/jannofresh-api/internal/container"
	handlers "github.com/jannofresh/jannofresh-api/internal/interface/http"
	"github.com/jannofresh/jannofresh-api/internal/interface/middleware"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.AdminOnly(container.GetUserStore(), container.GetConfig(), container.GetLogger()))
	{
		admin.POST("/products", m.Handler.CreateProduct)
		admin.PUT("/products/:id", m.Handler.UpdateProduct)
		admin.DELETE("/products/:id", m.Handler.DeleteProduct)
		admin.POST("/products/:id/image", m.Handler.UploadProductImage)

		admin.GET("/users", m.Handler.ListUsers)

		admin.GET("/orders", m.Handler.ListOrders)
		admin.GET("/orders/:id", m.Handler.GetOrder)
		admin.PUT("/orders/:id/status", m.Handler.UpdateOrderStatus)
	}
}
