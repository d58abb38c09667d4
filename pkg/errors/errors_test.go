package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: lab order not found", NewNotFoundError("lab order not found").Error())

	wrapped := NewInternalError("failed to create lab order", fmt.Errorf("connection reset"))
	assert.Equal(t, "INTERNAL: failed to create lab order: connection reset", wrapped.Error())
}

func TestAs_FindsWrappedAppError(t *testing.T) {
	base := NewValidationError("uhid is required")
	err := fmt.Errorf("create orders: %w", base)

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Same(t, base, appErr)
	assert.True(t, IsType(err, ErrorTypeValidation))
	assert.False(t, IsType(err, ErrorTypeNotFound))

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
