package session

import (
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
	sess := r.Group("/session")
	sess.Use(authMiddleware)
	sess.Use(middleware.ContextLogger(logger))
	{
		sess.GET("/access", middleware.RateLimitByUser(5, 20), handler.Access)
		sess.GET("/selection", middleware.RateLimitByUser(5, 20), handler.GetSelection)
		sess.PUT("/selection", middleware.RateLimitByUser(1, 5), handler.PutSelection)
	}
}
