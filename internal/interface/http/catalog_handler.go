package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/internal/application"
	"github.com/jannofresh/jannofresh-api/pkg/response"
)

// CatalogHandler serves the public storefront catalog.
type CatalogHandler struct {
	Catalog    *application.CatalogService
	Logger     *logrus.Logger
	Production bool
}

func NewCatalogHandler(catalog *application.CatalogService, logger *logrus.Logger, production bool) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Logger: logger, Production: production}
}

// ListProducts GET /api/products?category=<id>
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	if category == "all" {
		category = ""
	}
	products, err := h.Catalog.ListProducts(c.Request.Context(), category)
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load products", h.Production)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct GET /api/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load product", h.Production)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SearchProducts GET /api/products/search?q=<query>&limit=<n>
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Err(c, http.StatusBadRequest, "Search query is required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	products, err := h.Catalog.SearchProducts(c.Request.Context(), q, limit)
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Search failed", h.Production)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListCategories GET /api/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load categories", h.Production)
		return
	}
	c.JSON(http.StatusOK, categories)
}
