package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsmedika/hospital-api/internal/token"
)

func newAuthRouter(tm *token.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(tm))
	r.GET("/protected", func(c *gin.Context) {
		userID := c.GetUint(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	tm := token.NewManager("secret-test", time.Hour, token.NewMemoryStore())
	signed, err := tm.Issue(context.Background(), 5)
	require.NoError(t, err)

	r := newAuthRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":5}`, w.Body.String())
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	tm := token.NewManager("secret-test", time.Hour, token.NewMemoryStore())
	r := newAuthRouter(tm)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthenticated."}`, w.Body.String())
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	tm := token.NewManager("secret-test", time.Hour, token.NewMemoryStore())
	r := newAuthRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	tm := token.NewManager("secret-test", time.Hour, token.NewMemoryStore())
	ctx := context.Background()

	signed, err := tm.Issue(ctx, 5)
	require.NoError(t, err)

	_, jti, err := tm.Authenticate(ctx, signed)
	require.NoError(t, err)
	require.NoError(t, tm.Revoke(ctx, jti))

	r := newAuthRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
