package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/internal/application"
	"github.com/jannofresh/jannofresh-api/pkg/response"
)

// OrderHandler covers the customer-facing checkout and order tracking routes.
// All of them require authentication.
type OrderHandler struct {
	Orders     *application.OrderService
	Logger     *logrus.Logger
	Production bool
}

func NewOrderHandler(orders *application.OrderService, logger *logrus.Logger, production bool) *OrderHandler {
	return &OrderHandler{Orders: orders, Logger: logger, Production: production}
}

// Checkout POST /api/orders
func (h *OrderHandler) Checkout(c *gin.Context) {
	var in struct {
		Items   []application.CheckoutItem `json:"items"`
		Address string                     `json:"address"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	o, err := h.Orders.Checkout(c.Request.Context(), c.GetString("userID"), in.Items, in.Address)
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Checkout failed", h.Production)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   o,
	})
}

// ListMine GET /api/orders?status=All|Ongoing|History|<status>
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.Orders.ListForUser(c.Request.Context(), c.GetString("userID"), c.Query("status"))
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load orders", h.Production)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.Orders.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"), false)
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load order", h.Production)
		return
	}
	c.JSON(http.StatusOK, o)
}
