package middleware

import (
	"go-inspecta/internal/access"
	accesserrors "go-inspecta/internal/access/errors"

	"github.com/gin-gonic/gin"
)

// RequirePermission passes when the session holds at least one of tags.
// Chain it twice to require two tags.
func RequirePermission(tags ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		checker := access.FromContext(c.Request.Context())
		if !checker.Authenticated() {
			abortWithError(c, accesserrors.ErrUnauthenticated)
			return
		}
		if !checker.HasAnyPermission(tags...) {
			abortWithError(c, accesserrors.ErrPermissionDenied.WithDetails(gin.H{"required": tags}))
			return
		}
		c.Next()
	}
}
