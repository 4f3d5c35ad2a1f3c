package access_http

import (
	"go-inspecta/internal/access"
	"go-inspecta/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *access.Handler,
	authMiddleware gin.HandlerFunc,
	logger *zap.Logger,
) {
	group := r.Group("")
	group.Use(authMiddleware)
	group.Use(middleware.ContextLogger(logger))
	group.Use(middleware.RequirePermission(access.PermViewAdminPanel))
	{
		group.GET("/permissions", middleware.RateLimitByUser(3, 10), handler.ListPermissions)
		group.GET("/roles", middleware.RateLimitByUser(3, 10), handler.ListRoles)
		group.GET("/roles/:role/defaults", middleware.RateLimitByUser(3, 10), handler.RoleDefaults)
	}
}
