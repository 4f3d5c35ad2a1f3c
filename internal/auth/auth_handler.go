package auth

import (
	"net/http"
	"time"

	autherrors "go-inspecta/internal/auth/errors"
	"go-inspecta/internal/middleware"
	"go-inspecta/internal/shared/apperror"
	"go-inspecta/internal/shared/contextutil"
	platform "go-inspecta/internal/shared/request"
	"go-inspecta/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

func NewHandler(s Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookie: secureCookie, logger: l}
}

// writeAuthFailure renders the same body for every authentication failure.
func (h *Handler) writeAuthFailure(c *gin.Context) {
	httpErr := apperror.ToHTTP(autherrors.ErrInvalidCredentials)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	if httpErr.Status == http.StatusUnauthorized {
		h.writeAuthFailure(c)
		return
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	clientType := platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))
	if platform.IsWebClient(clientType) {
		maxAge := int(time.Until(result.ExpiresAt).Seconds())
		if maxAge < 1 {
			maxAge = 1
		}
		h.setTokenCookie(c, result.AccessToken, maxAge)
	}

	response.Success(c, http.StatusOK, result.Response(), nil)
}

func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.Logout(ctx, contextutil.GetSessionID(ctx)); err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setTokenCookie(c, "", -1)
	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (h *Handler) Me(c *gin.Context) {
	identity, err := h.service.Me(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, identity, nil)
}
