package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"inventaris-lab-backend/internal/inventory"
)

const (
	CtxUserIDKey = "user_id"
	CtxRoleKey   = "role"
)

func abort(c *gin.Context, status int, code inventory.Code, msg string) {
	c.AbortWithStatusJSON(status, inventory.ErrorBody(code, msg))
}

// RequireAuth checks "Authorization: Bearer <token>" and stores sub and role
// on the context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abort(c, http.StatusUnauthorized, inventory.CodeUnauthenticated, "missing Authorization header")
			return
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, http.StatusUnauthorized, inventory.CodeUnauthenticated, "invalid Authorization header")
			return
		}
		tokenStr := strings.TrimSpace(parts[1])
		if tokenStr == "" {
			abort(c, http.StatusUnauthorized, inventory.CodeUnauthenticated, "empty token")
			return
		}

		// alg pinned to HS256
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil || token == nil || !token.Valid {
			abort(c, http.StatusUnauthorized, inventory.CodeUnauthenticated, "invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, http.StatusUnauthorized, inventory.CodeUnauthenticated, "invalid claims")
			return
		}
		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			abort(c, http.StatusUnauthorized, inventory.CodeUnauthenticated, "invalid sub")
			return
		}
		role, _ := claims["role"].(string)

		c.Set(CtxUserIDKey, sub)
		c.Set(CtxRoleKey, role)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	roleSet := make(map[string]struct{})
	for _, r := range roles {
		if r != "" {
			roleSet[r] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		role := c.GetString(CtxRoleKey)
		if role == "" {
			abort(c, http.StatusForbidden, inventory.CodePermissionDenied, "missing role")
			return
		}
		if _, ok := roleSet[role]; !ok {
			abort(c, http.StatusForbidden, inventory.CodePermissionDenied, "forbidden")
			return
		}
		c.Next()
	}
}

// Guard is what the inventory routes put in front of their writes: token
// checking when auth is enabled, a pass-through otherwise.
func Guard(enabled bool, secret []byte) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return RequireAuth(secret)
}
