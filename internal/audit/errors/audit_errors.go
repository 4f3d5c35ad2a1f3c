package auditerrors

import (
	"net/http"

	"go-inspecta/internal/shared/apperror"
)

var (
	ErrInvalidEvent = apperror.New(
		apperror.CodeInvalidInput,
		"Audit event is missing its id or type",
		http.StatusBadRequest,
	)

	ErrInvalidLimit = apperror.New(
		apperror.CodeInvalidInput,
		"limit must be between 1 and 200",
		http.StatusBadRequest,
	)
)
