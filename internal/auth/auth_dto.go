package auth

import (
	"time"

	"go-inspecta/internal/access"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	AccessToken string
	SessionID   string
	ExpiresAt   time.Time
	Identity    access.Identity
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   string          `json:"expires_at"`
	User        access.Identity `json:"user"`
}

func (r LoginResult) Response() LoginResponse {
	return LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresAt:   r.ExpiresAt.UTC().Format(time.RFC3339),
		User:        r.Identity,
	}
}
