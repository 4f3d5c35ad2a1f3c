package accounterrors

import (
	"go-inspecta/internal/shared/apperror"
	"net/http"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)

	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An account with the same NIK already exists",
		http.StatusConflict,
	)

	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Password must be at least 6 characters",
		http.StatusBadRequest,
	)

	ErrFullNameTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Full name must be at least 3 characters",
		http.StatusBadRequest,
	)

	ErrSelfDelete = apperror.New(
		apperror.CodeInvalidState,
		"You cannot delete your own account",
		http.StatusBadRequest,
	)

	ErrSelfDeactivate = apperror.New(
		apperror.CodeInvalidState,
		"You cannot deactivate your own account",
		http.StatusBadRequest,
	)

	ErrEmptyBulkTargets = apperror.RequiredField("usernames")

	ErrEmptyBulkUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"At least one of permissions, allowed_menus or allowed_plants must be set",
		http.StatusBadRequest,
	)

	ErrInvalidListQuery = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown search, filter or sort field",
		http.StatusBadRequest,
	)

	// ErrImportValidation carries the full list of row messages in Details.
	ErrImportValidation = apperror.New(
		apperror.CodeValidationFailed,
		"CSV contains invalid rows, nothing was imported",
		http.StatusUnprocessableEntity,
	)

	ErrImportFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"CSV file is required",
		http.StatusBadRequest,
	)

	ErrImportTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"CSV file exceeds the 1 MB limit",
		http.StatusRequestEntityTooLarge,
	)
)
