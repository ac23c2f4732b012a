package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/internal/application"
	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/domain/repository"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
	"github.com/jannofresh/jannofresh-api/pkg/response"
)

const maxImageSize = 5 << 20 // 5 MiB

// AdminHandler is the back-office surface: catalog management, customer list
// and order fulfilment. Every route sits behind the admin allowlist.
type AdminHandler struct {
	Catalog    *application.CatalogService
	Orders     *application.OrderService
	Users      repository.UserRepository
	GCS        *storage.Client
	Bucket     string
	Logger     *logrus.Logger
	Production bool
}

func NewAdminHandler(catalog *application.CatalogService, orders *application.OrderService, users repository.UserRepository, gcs *storage.Client, bucket string, logger *logrus.Logger, production bool) *AdminHandler {
	return &AdminHandler{Catalog: catalog, Orders: orders, Users: users, GCS: gcs, Bucket: bucket, Logger: logger, Production: production}
}

type productInput struct {
	CategoryID  string   `json:"categoryId"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Unit        string   `json:"unit"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (in *productInput) validate() string {
	if strings.TrimSpace(in.Title) == "" {
		return "Product title is required"
	}
	if in.Price <= 0 {
		return "Product price must be positive"
	}
	if in.CategoryID == "" {
		return "Product category is required"
	}
	return ""
}

// CreateProduct POST /api/admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := in.validate(); msg != "" {
		response.Err(c, http.StatusBadRequest, msg)
		return
	}
	p := &entity.Product{
		CategoryID:  in.CategoryID,
		Title:       strings.TrimSpace(in.Title),
		Price:       in.Price,
		Unit:        in.Unit,
		Image:       in.Image,
		Description: in.Description,
		Tags:        in.Tags,
	}
	if err := h.Catalog.CreateProduct(c.Request.Context(), p); err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to create product", h.Production)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": p})
}

// UpdateProduct PUT /api/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := in.validate(); msg != "" {
		response.Err(c, http.StatusBadRequest, msg)
		return
	}
	p := &entity.Product{
		ID:          c.Param("id"),
		CategoryID:  in.CategoryID,
		Title:       strings.TrimSpace(in.Title),
		Price:       in.Price,
		Unit:        in.Unit,
		Image:       in.Image,
		Description: in.Description,
		Tags:        in.Tags,
	}
	if err := h.Catalog.UpdateProduct(c.Request.Context(), p); err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to update product", h.Production)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": p})
}

// DeleteProduct DELETE /api/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.Catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to delete product", h.Production)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// UploadProductImage POST /api/admin/products/:id/image (multipart, field "image")
func (h *AdminHandler) UploadProductImage(c *gin.Context) {
	if h.GCS == nil || h.Bucket == "" {
		response.Err(c, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}
	p, err := h.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load product", h.Production)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		response.Err(c, http.StatusBadRequest, "Image file is required")
		return
	}
	if fh.Size > maxImageSize {
		response.Err(c, http.StatusBadRequest, "Image must be smaller than 5MB")
		return
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType := mimeForExt(ext)
	if contentType == "" {
		response.Err(c, http.StatusBadRequest, "Image must be a jpg, png or webp file")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to read upload", h.Production)
		return
	}
	defer func() { _ = f.Close() }()

	objectPath := fmt.Sprintf("products/%s/%s%s", p.ID, uuid.NewString(), ext)
	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.Bucket, objectPath, contentType, f)
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Image upload failed", h.Production)
		return
	}

	p.Image = url
	if err := h.Catalog.UpdateProduct(c.Request.Context(), p); err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to update product", h.Production)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded", "image": url, "product": p})
}

func mimeForExt(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	return ""
}

// ListUsers GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load users", h.Production)
		return
	}
	out := make([]entity.SanitizedUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	c.JSON(http.StatusOK, out)
}

// ListOrders GET /api/admin/orders?status=
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load orders", h.Production)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder GET /api/admin/orders/:id
func (h *AdminHandler) GetOrder(c *gin.Context) {
	o, err := h.Orders.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"), true)
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load order", h.Production)
		return
	}
	c.JSON(http.StatusOK, o)
}

// UpdateOrderStatus PUT /api/admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	o, err := h.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to update order", h.Production)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": o})
}
