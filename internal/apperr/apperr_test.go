package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindInUse:        http.StatusBadRequest,
		KindNotFound:     http.StatusNotFound,
		KindConflict:     http.StatusConflict,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindUnavailable:  http.StatusServiceUnavailable,
		KindExport:       http.StatusInternalServerError,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.HTTPStatus(), kind.String())
	}
}

func TestKindOfWrappedError(t *testing.T) {
	base := NotFound("quiz %d not found", 7)
	wrapped := fmt.Errorf("loading quiz: %w", base)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.False(t, Is(nil, KindInternal))
}

func TestPublicMessageHidesServerErrors(t *testing.T) {
	cause := errors.New("disk full")

	assert.Equal(t, "internal server error", PublicMessage(Wrap(KindExport, cause, "writing csv")))
	assert.Equal(t, "internal server error", PublicMessage(cause))
	assert.Equal(t, "email already registered", PublicMessage(Conflict("email already registered")))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Internal(errors.New("boom"), "saving score")
	assert.Equal(t, "saving score: boom", err.Error())
	assert.ErrorIs(t, err, err.Err)
}
