package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/client_service/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("client 42: %w", apperrors.ErrNotFound)

	assert.ErrorIs(t, wrapped, apperrors.ErrNotFound)
	assert.False(t, errors.Is(wrapped, apperrors.ErrValidation))
	assert.False(t, errors.Is(wrapped, apperrors.ErrDuplicate))
}
