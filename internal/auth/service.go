package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"group-registry-backend/internal/validation"
)

// AuthService issues and validates bearer tokens for registry callers.
// A caller authenticates as a registry identity: the hex encoding of
// their 32-byte public key.
type AuthService struct {
	config *AuthConfig
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Identity string `json:"identity" example:"7f3a9b4c8d2e1f6a0b5c9d8e7f4a3b2c1d0e9f8a7b6c5d4e3f2a1b0c9d8e7f6a"`

	jwt.RegisteredClaims `swaggerignore:"true"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{config: config}, nil
}

// GenerateJWT creates a signed token for the given registry identity
func (s *AuthService) GenerateJWT(identity string) (string, error) {
	identity = strings.ToLower(identity)
	if err := validation.Identity(identity); err != nil {
		return "", fmt.Errorf("cannot issue token: %w", err)
	}

	now := time.Now()
	claims := &AuthClaims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.TokenTTLMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   identity,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a bearer token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if err := validation.Identity(claims.Identity); err != nil {
		return nil, fmt.Errorf("token carries malformed identity: %w", err)
	}

	return claims, nil
}
