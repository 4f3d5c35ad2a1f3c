package account

import (
	"go-inspecta/internal/access"
	"go-inspecta/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMiddleware gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	accounts := r.Group("/accounts")
	accounts.Use(authMiddleware)
	accounts.Use(middleware.ContextLogger(logger))
	accounts.Use(middleware.RequirePermission(access.PermManageUsers))
	{
		accounts.GET("", middleware.RateLimitByUser(5, 20), handler.List)
		accounts.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		accounts.POST("/bulk-update", middleware.RateLimitByUser(1, 3), handler.BulkUpdate)

		imports := accounts.Group("/import")
		imports.Use(middleware.RequirePermission(access.PermImportUsers))
		{
			imports.GET("/template", handler.Template)
			imports.POST("/preview", middleware.RateLimitByUser(1, 3), handler.PreviewImport)
			imports.POST("", middleware.RateLimitByUser(1, 2), middleware.Idempotency(rdb), handler.Import)
		}

		accounts.GET("/:username", middleware.RateLimitByUser(5, 20), handler.Get)
		accounts.PUT("/:username", middleware.RateLimitByUser(1, 5), handler.Update)
		accounts.DELETE("/:username", middleware.RateLimitByUser(1, 5), handler.Delete)
	}
}
