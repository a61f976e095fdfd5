package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	assert.Equal(t, "INVALID_REQUEST: Invalid request parameters", ErrInvalidRequest.Error())

	withDetails := ErrInvalidRequest.WithDetails(map[string]interface{}{"field": "q"})
	assert.Equal(t, "q", withDetails.Details["field"])
	assert.Nil(t, ErrInvalidRequest.Details, "shared error must not be mutated")

	msg := ErrTileNotAvailable.WithMessage("nothing here")
	assert.Equal(t, "nothing here", msg.Message)
	assert.Equal(t, http.StatusNotFound, msg.StatusCode)
	assert.NotEqual(t, "nothing here", ErrTileNotAvailable.Message)
}

func TestAppError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("tile 3/9/9: %w", ErrInvalidTileCoordinates.WithMessage("x out of range"))

	assert.ErrorIs(t, wrapped, ErrInvalidTileCoordinates)
	assert.NotErrorIs(t, wrapped, ErrUnknownMapType)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "x out of range", appErr.Message)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)

	_, ok = As(stderrors.New("plain"))
	assert.False(t, ok)
}
