package qcrecorderrors

import (
	"go-inspecta/internal/shared/apperror"
	"net/http"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Record not found",
		http.StatusNotFound,
	)
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"Type must be one of sanitasi_besar, kliping, monitoring_area",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"from must not be after to",
		http.StatusBadRequest,
	)
	ErrInvalidPayload = apperror.New(
		apperror.CodeInvalidInput,
		"payload must be a JSON object",
		http.StatusBadRequest,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid reference id",
		http.StatusBadRequest,
	)
	ErrNumberConflict = apperror.New(
		apperror.CodeConflict,
		"Record number already exists",
		http.StatusConflict,
	)
)
