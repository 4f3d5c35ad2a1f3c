package qcrecord

import (
	"go-inspecta/internal/access"
	"go-inspecta/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	authMiddleware gin.HandlerFunc,
	logger *zap.Logger,
) {
	records := r.Group("/records")
	records.Use(authMiddleware)
	records.Use(middleware.ContextLogger(logger))
	{
		records.GET("", middleware.RequirePermission(access.PermViewRecords), middleware.RateLimitByUser(5, 20), h.List)
		records.POST("", middleware.RequirePermission(access.PermCreateRecords), middleware.RateLimitByUser(2, 10), h.Create)
		records.GET("/:id", middleware.RequirePermission(access.PermViewRecords), h.Get)
		records.PUT("/:id", middleware.RequirePermission(access.PermUpdateRecords), middleware.RateLimitByUser(2, 10), h.Update)
		records.DELETE("/:id", middleware.RequirePermission(access.PermDeleteRecords), middleware.RateLimitByUser(1, 5), h.Delete)
	}
}
