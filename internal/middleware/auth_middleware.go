package middleware

import (
	"context"
	"strings"

	"go-inspecta/internal/access"
	"go-inspecta/internal/auth/token"
	sessionerrors "go-inspecta/internal/session/errors"
	"go-inspecta/internal/shared/apperror"
	"go-inspecta/internal/shared/contextutil"
	"go-inspecta/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookie = "access_token"

type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// SessionResolver restores the identity snapshot behind a session id.
type SessionResolver interface {
	Current(ctx context.Context, sid string) (*access.Identity, error)
}

func AuthMiddleware(tokens TokenParser, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			abortWithError(c, err)
			return
		}

		identity, err := sessions.Current(c.Request.Context(), claims.SessionID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if identity == nil || identity.Username != claims.Username {
			abortWithError(c, sessionerrors.ErrSessionNotFound)
			return
		}

		c.Set("username", identity.Username)
		c.Set("session_id", claims.SessionID)
		c.Set("role", string(identity.Role))

		ctx := c.Request.Context()
		ctx = access.WithIdentity(ctx, identity)
		ctx = contextutil.WithUsername(ctx, identity.Username)
		ctx = contextutil.WithSessionID(ctx, claims.SessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
