package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MudShop_Go/internal/domain"
)

func TestHandleCommand(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		execErr    error
		expectCall bool
		wantStatus int
		wantBody   string
	}{
		{"accepted", `{"player":"Alice","command":"buy 2 sword"}`, nil, true, http.StatusAccepted, MsgCommandAccepted},
		{"unknown player", `{"player":"Ghost","command":"look"}`, fmt.Errorf("%w: ghost", domain.ErrPlayerNotFound), true, http.StatusNotFound, ErrMsgPlayerNotFoundError},
		{"bad json", `{"player":`, nil, false, http.StatusBadRequest, ErrMsgInvalidRequest},
		{"validation", `{"player":"Alice"}`, nil, false, http.StatusBadRequest, `"command":"This field is required"`},
		{"internal error", `{"player":"Alice","command":"look"}`, assert.AnError, true, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := new(MockExecutor)
			if tt.expectCall {
				exec.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(tt.execErr)
			}

			w := serve(http.MethodPost, "/command", "/command", tt.body, HandleCommand(exec))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			exec.AssertExpectations(t)
		})
	}
}

func TestHandleCommand_PassesLine(t *testing.T) {
	exec := new(MockExecutor)
	exec.On("Execute", mock.Anything, "Alice", "sell dagger").Return(nil)

	w := serve(http.MethodPost, "/command", "/command", `{"player":"Alice","command":"sell dagger"}`, HandleCommand(exec))

	assert.Equal(t, http.StatusAccepted, w.Code)
	exec.AssertExpectations(t)
}
