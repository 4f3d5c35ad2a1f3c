package audit

import (
	"go-inspecta/internal/access"
	"go-inspecta/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMiddleware gin.HandlerFunc,
	logger *zap.Logger,
) {
	logs := r.Group("/audit-logs")
	logs.Use(authMiddleware)
	logs.Use(middleware.ContextLogger(logger))
	logs.Use(middleware.RequirePermission(access.PermViewAdminPanel))
	{
		logs.GET("", middleware.RateLimitByUser(3, 10), handler.List)
	}
}
