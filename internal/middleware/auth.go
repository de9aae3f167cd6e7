package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recetario/backend/internal/types"
)

// Context keys populated by the auth middleware.
const (
	ContextUserID   = "user_id"
	ContextUserName = "user_name"
	ContextRole     = "role"
)

// TokenVerifier resolves a bearer token to identity claims.
type TokenVerifier interface {
	VerifyToken(token string) (*types.Claims, error)
}

// Auth requires a valid bearer token and stores the resolved claims in the
// request context. This is the single authentication guard; privileged
// routes additionally stack RequireAdmin.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveClaims(c, verifier)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
			c.Abort()
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves the bearer token when present and valid, and lets
// the request through either way. Used by routes with lenient semantics
// (my-rating returns null for anonymous callers instead of 401).
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := resolveClaims(c, verifier); ok {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// RequireAdmin gates a route on the admin role claim. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Acceso denegado. Se requiere rol de administrador"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func resolveClaims(c *gin.Context, verifier TokenVerifier) (*types.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	claims, err := verifier.VerifyToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setClaims(c *gin.Context, claims *types.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUserName, claims.Name)
	c.Set(ContextRole, claims.Role)
}
