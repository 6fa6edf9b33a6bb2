package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAccountNotFoundIsNotFound(t *testing.T) {
	err := fmt.Errorf("lookup admin: %w", apperrors.ErrAccountNotFound)

	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAppError(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(500, "failed to begin transaction", cause)

	assert.Equal(t, "failed to begin transaction: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	var appErr *apperrors.AppError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &appErr))
	assert.Equal(t, 500, appErr.Code)

	assert.Equal(t, "bad input", apperrors.NewAppError(400, "bad input", nil).Error())
}
