package session

import (
	"go-inspecta/internal/access"
	"go-inspecta/internal/shared/apperror"
	"go-inspecta/internal/shared/contextutil"
	"go-inspecta/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	manager Manager
	logger  *zap.Logger
}

func NewHandler(manager Manager, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("session.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.handler")
	}
	return &Handler{manager: manager, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("session request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Access returns the capability summary of the current session.
func (h *Handler) Access(c *gin.Context) {
	response.Success(c, http.StatusOK, access.FromContext(c.Request.Context()).Summary(), nil)
}

func (h *Handler) GetSelection(c *gin.Context) {
	ctx := c.Request.Context()
	sel, err := h.manager.Selection(ctx, contextutil.GetSessionID(ctx))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if sel == nil {
		response.Success(c, http.StatusOK, nil, nil)
		return
	}
	response.Success(c, http.StatusOK, sel, nil)
}

type SelectionRequest struct {
	Plant string `json:"plant" binding:"required"`
	Line  int    `json:"line" binding:"omitempty,min=1"`
}

func (h *Handler) PutSelection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := c.Request.Context()
	sel, err := h.manager.Select(ctx, contextutil.GetSessionID(ctx), Selection{Plant: req.Plant, Line: req.Line})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sel, nil)
}
