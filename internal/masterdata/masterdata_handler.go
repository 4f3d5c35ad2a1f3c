package masterdata

import (
	"net/http"

	"go-inspecta/internal/listing"
	"go-inspecta/internal/shared/apperror"
	"go-inspecta/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("masterdata.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("masterdata.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("master data request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func writePage[T any](c *gin.Context, page listing.Page[T]) {
	meta := response.NewPaginationMeta(int64(page.Total), page.Page, page.PageSize)
	response.Success(c, http.StatusOK, page.Items, &meta)
}

func (h *Handler) bindQuery(c *gin.Context) (ListQuery, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return q, false
	}
	return q, true
}

func (h *Handler) ListAreas(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	page, err := h.service.ListAreas(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writePage(c, page)
}

func (h *Handler) GetArea(c *gin.Context) {
	resp, err := h.service.GetArea(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateArea(c *gin.Context) {
	var req AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.CreateArea(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateArea(c *gin.Context) {
	var req AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.UpdateArea(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteArea(c *gin.Context) {
	if err := h.service.DeleteArea(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")}, nil)
}

func (h *Handler) ListBagian(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	page, err := h.service.ListBagian(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writePage(c, page)
}

func (h *Handler) GetBagian(c *gin.Context) {
	resp, err := h.service.GetBagian(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateBagian(c *gin.Context) {
	var req BagianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.CreateBagian(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateBagian(c *gin.Context) {
	var req BagianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.UpdateBagian(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteBagian(c *gin.Context) {
	if err := h.service.DeleteBagian(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")}, nil)
}

func (h *Handler) ListSupervisors(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	page, err := h.service.ListSupervisors(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writePage(c, page)
}

func (h *Handler) GetSupervisor(c *gin.Context) {
	resp, err := h.service.GetSupervisor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateSupervisor(c *gin.Context) {
	var req SupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.CreateSupervisor(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateSupervisor(c *gin.Context) {
	var req SupervisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.service.UpdateSupervisor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteSupervisor(c *gin.Context) {
	if err := h.service.DeleteSupervisor(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("id")}, nil)
}
