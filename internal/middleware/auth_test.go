package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"dealpipeline/internal/authz"
	"dealpipeline/internal/middleware"
	"dealpipeline/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, claims *middleware.Claims, key []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func testToken(t *testing.T, userID int, role string) string {
	return signToken(t, &middleware.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}, middleware.JWTKey)
}

func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id"), "role": c.GetString("role")})
	})
	r.POST("/deals", middleware.Require(authz.OpCreateDeal), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	r.POST("/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, http.MethodGet, "/whoami", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_PublicPathSkipsAuth(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, http.MethodPost, "/login", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, http.MethodGet, "/whoami", testToken(t, 7, models.RolePartner))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":7`)
	require.Contains(t, w.Body.String(), `"role":"partner"`)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newTestRouter()
	token := signToken(t, &middleware.Claims{
		UserID: 7,
		Role:   models.RolePartner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, middleware.JWTKey)
	w := doRequest(r, http.MethodGet, "/whoami", token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongKey(t *testing.T) {
	r := newTestRouter()
	token := signToken(t, &middleware.Claims{
		UserID: 7,
		Role:   models.RolePartner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}, []byte("someone-elses-key"))
	w := doRequest(r, http.MethodGet, "/whoami", token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequire_RoleGate(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodPost, "/deals", testToken(t, 2, models.RoleAnalyst))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPost, "/deals", testToken(t, 3, models.RolePartner))
	require.Equal(t, http.StatusForbidden, w.Code)
}
