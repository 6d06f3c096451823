package middleware

import (
	"log"
	"net/http"
	"strings"

	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/usecase"
	"lomba_backend/pkg"

	"github.com/gin-gonic/gin"
)

const principalKey = "auth.principal"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access required", http.StatusForbidden)
)

// RequireAuth resolves the bearer token into a user and stores it on the
// request context for handlers to pick up.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c).Role != entities.RoleAdmin {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or the zero
// value on unauthenticated routes.
func CurrentUser(c *gin.Context) entities.User {
	v, ok := c.Get(principalKey)
	if !ok {
		return entities.User{}
	}
	user, _ := v.(entities.User)
	return user
}
