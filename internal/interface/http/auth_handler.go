package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/internal/application"
	"github.com/jannofresh/jannofresh-api/pkg/response"
)

// AuthHandler exposes registration, login and the current-user endpoint.
// Tokens are returned in the body and mirrored into an HttpOnly cookie so
// both API clients and the browser storefront can authenticate.
type AuthHandler struct {
	Auth       *application.AuthService
	Logger     *logrus.Logger
	TokenTTL   time.Duration
	Production bool
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger, tokenTTL time.Duration, production bool) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger, TokenTTL: tokenTTL, Production: production}
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, int(h.TokenTTL.Seconds()), "/", "", h.Production, true)
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in application.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, token, err := h.Auth.Register(c.Request.Context(), in)
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Registration failed", h.Production)
		return
	}
	h.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    u.Sanitized(),
		"token":   token,
	})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, token, err := h.Auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Login failed", h.Production)
		return
	}
	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    u.Sanitized(),
		"token":   token,
	})
}

// Me GET /api/auth/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Auth.CurrentUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.MappedErr(c, h.Logger, err, "Failed to load profile", h.Production)
		return
	}
	c.JSON(http.StatusOK, u.Sanitized())
}

// Logout POST /api/auth/logout. Tokens are stateless, so logout only clears
// the cookie; API clients simply discard their copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", h.Production, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
