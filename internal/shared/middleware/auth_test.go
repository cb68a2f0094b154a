package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidshare-backend/pkg/jwt"
)

func setupAuthRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		userID, err := GetUserID(c)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "test-secret"
	manager := jwt.NewManager(secret, 15*time.Minute, 72*time.Hour)

	request := func(authHeader string) *httptest.ResponseRecorder {
		router := setupAuthRouter(secret)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing header is unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("").Code)
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Token abc").Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Bearer not.a.jwt").Code)
	})

	t.Run("refresh token is not accepted as access token", func(t *testing.T) {
		refresh, err := manager.GenerateRefreshToken(uuid.NewString())
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, request("Bearer "+refresh).Code)
	})

	t.Run("valid access token passes through", func(t *testing.T) {
		userID := uuid.New()
		access, err := manager.GenerateAccessToken(userID.String(), "a@example.com")
		require.NoError(t, err)

		rec := request("Bearer " + access)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), userID.String())
	})
}
