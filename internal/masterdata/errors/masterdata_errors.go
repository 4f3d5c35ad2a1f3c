package masterdataerrors

import (
	"go-inspecta/internal/shared/apperror"
	"net/http"
)

var (
	ErrAreaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Area not found",
		http.StatusNotFound,
	)
	ErrBagianNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bagian not found",
		http.StatusNotFound,
	)
	ErrSupervisorNotFound = apperror.New(
		apperror.CodeNotFound,
		"Supervisor not found",
		http.StatusNotFound,
	)
	ErrUnknownArea = apperror.New(
		apperror.CodeInvalidInput,
		"area_id does not refer to an existing area",
		http.StatusBadRequest,
	)
	ErrAreaInUse = apperror.New(
		apperror.CodeConflict,
		"Area still has bagian and cannot be deleted",
		http.StatusConflict,
	)
	ErrInvalidLine = apperror.New(
		apperror.CodeInvalidInput,
		"Line numbers must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)
	ErrInvalidListQuery = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid list query",
		http.StatusBadRequest,
	)
)
