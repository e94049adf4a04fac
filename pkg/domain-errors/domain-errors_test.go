package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndHasCode(t *testing.T) {
	err := New(CodeNotFound, "country not found")

	assert.EqualError(t, err, "country not found")
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeInternal))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
	assert.False(t, HasCode(nil, CodeNotFound))
}

func TestWrap_PreservesExistingCode(t *testing.T) {
	inner := New(CodeUnauthorized, "token expired")
	wrapped := Wrap(inner, CodeInternal, "refresh failed")

	assert.True(t, HasCode(wrapped, CodeUnauthorized))
	assert.EqualError(t, wrapped, "refresh failed")
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_AssignsCodeToPlainErrors(t *testing.T) {
	inner := errors.New("connection reset")
	wrapped := Wrap(inner, CodeInternal, "failed to query countries")

	assert.True(t, HasCode(wrapped, CodeInternal))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_SurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(errors.New("io"), CodeUpstream, "fetch failed"))
	assert.True(t, HasCode(err, CodeUpstream))
}

func TestIs_MatchesByCode(t *testing.T) {
	a := New(CodeConflict, "email already registered")
	b := New(CodeConflict, "different message")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, New(CodeNotFound, ""))
}

func TestError_FallsBackToCode(t *testing.T) {
	var e Error
	e.Code = CodeInternal
	require.Equal(t, "internal_error", e.Error())
}
