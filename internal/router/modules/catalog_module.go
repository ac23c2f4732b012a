package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jannofresh/jannofresh-api/internal/container"
	handlers "github.com/jannofresh/jannofresh-api/internal/interface/http"
	"github.com/jannofresh/jannofresh-api/internal/interface/middleware"
)

type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP())

	rg.GET("/products", browseLimiter, m.Handler.ListProducts)
	rg.GET("/products/search", browseLimiter, m.Handler.SearchProducts)
	rg.GET("/products/:id", browseLimiter, m.Handler.GetProduct)
	rg.GET("/categories", browseLimiter, m.Handler.ListCategories)
}
