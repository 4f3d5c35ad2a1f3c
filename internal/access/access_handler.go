package access

import (
	accesserrors "go-inspecta/internal/access/errors"
	"go-inspecta/internal/shared/apperror"
	"go-inspecta/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	catalog  Catalog
	defaults *Defaults
	logger   *zap.Logger
}

func NewHandler(catalog Catalog, defaults *Defaults, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("access.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("access.handler")
	}
	return &Handler{catalog: catalog, defaults: defaults, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("access request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListPermissions(c *gin.Context) {
	groups, err := h.catalog.Grouped(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, groups, nil)
}

func (h *Handler) ListRoles(c *gin.Context) {
	resp := make([]RoleResponse, 0, len(roles))
	for _, r := range Roles() {
		resp = append(resp, RoleResponse{Role: r, DefaultPermissions: h.defaults.Bundle(r)})
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RoleDefaults(c *gin.Context) {
	role, ok := ParseRole(c.Param("role"))
	if !ok {
		h.writeServiceError(c, accesserrors.ErrInvalidRole)
		return
	}
	response.Success(c, http.StatusOK, RoleResponse{
		Role:               role,
		DefaultPermissions: h.defaults.Bundle(role),
	}, nil)
}
