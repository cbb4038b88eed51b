package client

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"spring boot body", `{"status":400,"error":"Bad Request","message":"OTP expired"}`, "OTP expired"},
		{"error field only", `{"error":"Email already registered"}`, "Email already registered"},
		{"detail field", `{"detail":"password mismatch"}`, "password mismatch"},
		{"blank message falls through", `{"message":"  ","error":"Conflict"}`, "Conflict"},
		{"plain text", "  Invalid OTP\n", "Invalid OTP"},
		{"empty", "", ""},
		{"broken json", `{"message":`, ""},
		{"html page", "<html><body>502</body></html>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMessage([]byte(tt.body)))
		})
	}
}

func TestAPIError_UnauthorizedMatching(t *testing.T) {
	require.ErrorIs(t, newAPIError(http.StatusUnauthorized, nil), ErrUnauthorized)
	require.ErrorIs(t, newAPIError(http.StatusForbidden, nil), ErrUnauthorized)
	require.NotErrorIs(t, newAPIError(http.StatusBadRequest, nil), ErrUnauthorized)
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "backend error: 400: bad otp", (&APIError{StatusCode: 400, Message: "bad otp"}).Error())
	assert.Equal(t, "backend error: 500 Internal Server Error", (&APIError{StatusCode: 500}).Error())
}

func TestServerMessage(t *testing.T) {
	wrapped := fmt.Errorf("verify: %w", &APIError{StatusCode: 400, Message: "OTP expired"})
	assert.Equal(t, "OTP expired", ServerMessage(wrapped))
	assert.Empty(t, ServerMessage(errors.New("dial tcp: refused")))
	assert.Empty(t, ServerMessage(nil))
}
