package autherrors

import (
	"go-inspecta/internal/shared/apperror"
	"net/http"
)

var (
	// ErrInvalidCredentials covers unknown username, inactive account and wrong
	// password alike.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"NIK atau password salah",
		http.StatusUnauthorized,
	)
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to issue token",
		http.StatusInternalServerError,
	)
)
