package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	err := New(ErrCodeBadRequest, "Missing credential")
	assert.Equal(t, "[BAD_REQUEST] Missing credential", err.Error())

	wrapped := Wrap(fmt.Errorf("boom"), ErrCodeInternal, "Approve failed")
	assert.Equal(t, "[INTERNAL_ERROR] Approve failed: boom", wrapped.Error())
}

func TestAsAppError_FindsWrapped(t *testing.T) {
	appErr := NewForbiddenError("Admin only")
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Same(t, appErr, got)
	assert.True(t, IsAppError(wrapped))

	_, ok = AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
	_, ok = AsAppError(nil)
	assert.False(t, ok)
}

func TestAppError_Classification(t *testing.T) {
	assert.True(t, NewProfileNotFoundError("123").IsNotFound())
	assert.True(t, NewTrackNotFoundError("trk_1").IsNotFound())
	assert.True(t, NewValidationError("displayName", "is required").IsValidation())
	assert.True(t, NewUnauthorizedError("", nil).IsUnauthorized())
	assert.True(t, NewForbiddenError("").IsUnauthorized())
	assert.True(t, NewConfigurationError("JWT_SECRET", nil).IsInternal())
	assert.True(t, NewDatabaseError("get profile", stderrors.New("x")).IsInternal())
}

func TestUnauthorizedError_HidesCause(t *testing.T) {
	cause := stderrors.New("crypto/rsa: verification error")
	err := NewUnauthorizedError("Google token verification failed", cause)

	assert.Equal(t, "Google token verification failed", err.Message)
	assert.Empty(t, err.Detail)
	assert.ErrorIs(t, err, cause)
}

func TestWithDetail_NotPublic(t *testing.T) {
	err := New(ErrCodeInternal, "Reject failed").
		WithDetail("operation", "reject").
		WithPublicDetail("store unavailable")

	assert.Equal(t, "reject", err.Details["operation"])
	assert.Equal(t, "store unavailable", err.Detail)
}
