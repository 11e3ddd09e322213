package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("invalid input"), wantCode: http.StatusBadRequest, wantMsg: "invalid input"},
		{name: "unauthorized", err: failure.Unauthorized("authentication required"), wantCode: http.StatusUnauthorized, wantMsg: "authentication required"},
		{name: "forbidden", err: failure.Forbidden("admin role required"), wantCode: http.StatusForbidden, wantMsg: "admin role required"},
		{name: "not found", err: failure.NotFound("user not found"), wantCode: http.StatusNotFound, wantMsg: "user not found"},
		{name: "conflict", err: failure.Conflict("email already registered"), wantCode: http.StatusConflict, wantMsg: "email already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestBadRequest(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("malformed body"))

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestGetCode_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain error")))
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", failure.NotFound("room not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
}

func TestIs(t *testing.T) {
	err := failure.Conflict("email already registered")

	assert.True(t, failure.Is(err, http.StatusConflict))
	assert.False(t, failure.Is(err, http.StatusNotFound))
	assert.False(t, failure.Is(errors.New("plain error"), http.StatusConflict))
}
