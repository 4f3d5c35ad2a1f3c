package sessionerrors

import (
	"go-inspecta/internal/shared/apperror"
	"net/http"
)

var (
	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Session has ended, please log in again",
		http.StatusUnauthorized,
	)
	ErrInactiveIdentity = apperror.New(
		apperror.CodeInvalidState,
		"Inactive accounts cannot start a session",
		http.StatusBadRequest,
	)
	ErrPlantRequired = apperror.RequiredField("plant")
)
