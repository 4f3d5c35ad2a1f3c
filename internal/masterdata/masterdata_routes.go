package masterdata

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
	md := r.Group("/master-data")
	md.Use(authMiddleware)
	md.Use(middleware.ContextLogger(logger))

	read := middleware.RequirePermission(access.PermViewMasterData, access.PermManageMasterData)
	write := middleware.RequirePermission(access.PermManageMasterData)

	areas := md.Group("/areas")
	{
		areas.GET("", read, h.ListAreas)
		areas.POST("", write, h.CreateArea)
		areas.GET("/:id", read, h.GetArea)
		areas.PUT("/:id", write, h.UpdateArea)
		areas.DELETE("/:id", write, h.DeleteArea)
	}

	bagian := md.Group("/bagian")
	{
		bagian.GET("", read, h.ListBagian)
		bagian.POST("", write, h.CreateBagian)
		bagian.GET("/:id", read, h.GetBagian)
		bagian.PUT("/:id", write, h.UpdateBagian)
		bagian.DELETE("/:id", write, h.DeleteBagian)
	}

	supervisors := md.Group("/supervisors")
	{
		supervisors.GET("", read, h.ListSupervisors)
		supervisors.POST("", write, h.CreateSupervisor)
		supervisors.GET("/:id", read, h.GetSupervisor)
		supervisors.PUT("/:id", write, h.UpdateSupervisor)
		supervisors.DELETE("/:id", write, h.DeleteSupervisor)
	}
}
