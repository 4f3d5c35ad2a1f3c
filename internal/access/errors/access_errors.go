package accesserrors

import (
	"go-inspecta/internal/shared/apperror"
	"net/http"
)

var (
	ErrUnknownPermission = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown permission",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be one of admin, supervisor, qc_field, manajer",
		http.StatusBadRequest,
	)
	ErrUnauthenticated = apperror.New(
		apperror.CodeUnauthorized,
		"No active session",
		http.StatusUnauthorized,
	)
	ErrPermissionDenied = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)
	ErrMenuDenied = apperror.New(
		apperror.CodeForbidden,
		"Menu is not allowed for this account",
		http.StatusForbidden,
	)
	ErrPlantDenied = apperror.New(
		apperror.CodeForbidden,
		"Plant is not allowed for this account",
		http.StatusForbidden,
	)
	ErrCatalogUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Permission catalog is unavailable",
		http.StatusServiceUnavailable,
	)
)
