package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danuartha/notaris-go/internal/config"
	"github.com/danuartha/notaris-go/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func initTestKey() {
	config.JwtSecret = "unit-test-secret"
	Init()
}

func TestGenerateAndParseToken(t *testing.T) {
	initTestKey()

	token, err := GenerateToken(7, "Budi", 2, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Budi", claims.Name)
	assert.Equal(t, uint(2), claims.RoleID)
}

func TestParseToken_Expired(t *testing.T) {
	initTestKey()

	token, err := GenerateToken(7, "Budi", 2, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_WrongKey(t *testing.T) {
	initTestKey()
	token, _ := GenerateToken(7, "Budi", 2, time.Hour)

	config.JwtSecret = "different-secret"
	Init()

	_, err := ParseToken(token)
	assert.Error(t, err)
}

func authRequest(t *testing.T, header, cookie string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		claims, _ := c.Get("claims")
		c.JSON(http.StatusOK, gin.H{"uid": claims.(*types.Claims).UserID})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_BearerHeader(t *testing.T) {
	initTestKey()
	token, _ := GenerateToken(7, "Budi", 2, time.Hour)

	w := authRequest(t, "Bearer "+token, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_Cookie(t *testing.T) {
	initTestKey()
	token, _ := GenerateToken(7, "Budi", 2, time.Hour)

	w := authRequest(t, "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	initTestKey()

	w := authRequest(t, "Token abc", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_MissingCredentials(t *testing.T) {
	initTestKey()

	w := authRequest(t, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
