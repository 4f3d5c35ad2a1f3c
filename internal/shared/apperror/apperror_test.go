package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-inspecta/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "already exists", http.StatusConflict).
			WithDetails([]string{"a"})

		got := apperror.ToHTTP(fmt.Errorf("create: %w", err))

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, []string{"a"}, got.Details)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})
}

func TestAppError_IsSurvivesCopies(t *testing.T) {
	base := apperror.New(apperror.CodeNotFound, "Area not found", http.StatusNotFound)

	assert.True(t, errors.Is(base.WithDetails("x"), base))
	assert.True(t, errors.Is(apperror.Wrap(errors.New("db"), base.Code, base.Message, base.HTTPStatus), base))
	assert.False(t, errors.Is(apperror.ErrNotFound, base))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		FullName string `validate:"required"`
		Username string `validate:"min=3"`
	}
	v := validator.New()

	err := apperror.MapValidationError(v.Struct(payload{Username: "abcd"}))
	assert.Equal(t, "Fullname is required", err.Error())

	err = apperror.MapValidationError(v.Struct(payload{FullName: "Ann", Username: "a"}))
	assert.Equal(t, "Username is invalid", err.Error())

	err = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, "Invalid input", err.Error())
}
