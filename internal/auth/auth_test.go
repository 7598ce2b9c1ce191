package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:       "test-signing-key",
		Issuer:          "group-registry-backend",
		TokenTTLMinutes: 60,
	}
}

func testIdentity() string {
	return strings.Repeat("ab", 32)
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config := testConfig()

		err := config.ValidateConfig()
		assert.NoError(t, err)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing issuer", func(t *testing.T) {
		config := testConfig()
		config.Issuer = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "issuer is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		config := testConfig()
		config.TokenTTLMinutes = 0

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token TTL must be positive")
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		token, err := service.GenerateJWT(testIdentity())
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, testIdentity(), claims.Identity)
		assert.Equal(t, "group-registry-backend", claims.Issuer)
		assert.Equal(t, testIdentity(), claims.Subject)
	})

	t.Run("identity is case folded", func(t *testing.T) {
		token, err := service.GenerateJWT(strings.Repeat("AB", 32))
		assert.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, testIdentity(), claims.Identity)
	})

	t.Run("malformed identity rejected", func(t *testing.T) {
		_, err := service.GenerateJWT("not-a-key")
		assert.Error(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := service.ValidateJWT("invalid-token")
		assert.Error(t, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		otherConfig := testConfig()
		otherConfig.JWTSecret = "a-different-signing-key"
		other, err := NewAuthService(otherConfig)
		require.NoError(t, err)

		token, err := other.GenerateJWT(testIdentity())
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredConfig := testConfig()
		expiredConfig.TokenTTLMinutes = -5
		// Bypass config validation to mint an already-expired token
		expired := &AuthService{config: expiredConfig}

		token, err := expired.GenerateJWT(testIdentity())
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"identity": identity})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := service.GenerateJWT(testIdentity())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), testIdentity())
	})
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/open", middleware.OptionalAuth(), func(c *gin.Context) {
		if identity, ok := GetIdentity(c); ok {
			c.JSON(http.StatusOK, gin.H{"identity": identity})
			return
		}
		c.JSON(http.StatusOK, gin.H{"identity": nil})
	})

	t.Run("no header passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/open", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "null")
	})

	t.Run("invalid token passes through anonymously", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "null")
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		token, err := service.GenerateJWT(testIdentity())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), testIdentity())
	})
}
