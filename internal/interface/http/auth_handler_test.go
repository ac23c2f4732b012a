package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jannofresh/jannofresh-api/internal/application"
	"github.com/jannofresh/jannofresh-api/internal/infrastructure/store"
	"github.com/jannofresh/jannofresh-api/internal/interface/middleware"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
)

func newAuthRouter(t *testing.T, jwtExpires time.Duration) (*gin.Engine, *helpers.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwt := helpers.NewJWTManager("test-secret", jwtExpires)
	svc := application.NewAuthService(store.NewUserStore(nil, nil), jwt, nil, nil, "JannoFresh", false)
	h := NewAuthHandler(svc, nil, jwtExpires, false)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	r.GET("/api/auth/me", middleware.Auth(jwt), h.Me)
	return r, jwt
}

func doJSON(r *gin.Engine, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const registerBody = `{"name":"Anna Svensson","email":"anna@example.com","password":"secret1","phone":"+4512345678"}`

func TestRegisterEndpoint(t *testing.T) {
	r, jwt := newAuthRouter(t, time.Hour)

	w := doJSON(r, http.MethodPost, "/api/auth/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "anna@example.com", resp.User.Email)

	uid, err := jwt.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, uid)

	// The password must not appear anywhere in the response, hashed or not.
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), "$2")
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	r, _ := newAuthRouter(t, time.Hour)

	w := doJSON(r, http.MethodPost, "/api/auth/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	dup := strings.Replace(registerBody, "anna@example.com", "ANNA@EXAMPLE.COM", 1)
	w = doJSON(r, http.MethodPost, "/api/auth/register", dup, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User with this email already exists"}`, w.Body.String())
}

func TestRegisterEndpointShortPassword(t *testing.T) {
	r, _ := newAuthRouter(t, time.Hour)

	body := strings.Replace(registerBody, "secret1", "123", 1)
	w := doJSON(r, http.MethodPost, "/api/auth/register", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Password must be at least 6 characters"}`, w.Body.String())
}

func TestLoginEndpointFailuresLookTheSame(t *testing.T) {
	r, _ := newAuthRouter(t, time.Hour)
	w := doJSON(r, http.MethodPost, "/api/auth/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"anna@example.com","password":"wrong-password"}`, nil)
	unknownEmail := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"secret1"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, wrongPassword.Body.String())
}

func TestMeEndpoint(t *testing.T) {
	r, _ := newAuthRouter(t, time.Hour)

	w := doJSON(r, http.MethodPost, "/api/auth/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	h := http.Header{}
	h.Set("Authorization", "Bearer "+reg.Token)
	w = doJSON(r, http.MethodGet, "/api/auth/me", "", h)
	require.Equal(t, http.StatusOK, w.Code)

	var user map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "anna@example.com", user["email"])
	assert.NotContains(t, user, "password")
}

func TestMeEndpointAcceptsCookie(t *testing.T) {
	r, jwt := newAuthRouter(t, time.Hour)

	w := doJSON(r, http.MethodPost, "/api/auth/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: reg.Token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	uid, err := jwt.Verify(reg.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, uid)
}

func TestMeEndpointRejectsBadTokens(t *testing.T) {
	r, _ := newAuthRouter(t, time.Hour)

	// No token at all.
	w := doJSON(r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())

	// Garbage token.
	h := http.Header{}
	h.Set("Authorization", "Bearer not.a.token")
	w = doJSON(r, http.MethodGet, "/api/auth/me", "", h)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestMeEndpointRejectsExpiredToken(t *testing.T) {
	r, _ := newAuthRouter(t, -time.Minute) // tokens are born expired

	w := doJSON(r, http.MethodPost, "/api/auth/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	h := http.Header{}
	h.Set("Authorization", "Bearer "+reg.Token)
	w = doJSON(r, http.MethodGet, "/api/auth/me", "", h)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestLogoutEndpoint(t *testing.T) {
	r, _ := newAuthRouter(t, time.Hour)

	w := doJSON(r, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logout successful"}`, w.Body.String())
}
