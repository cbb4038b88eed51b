package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrMissingToken = errors.New("backend returned no token")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("backend error: %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets 401/403 responses match ErrUnauthorized.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

// ServerMessage returns the message the backend attached to err, or "" if
// err is not an APIError or carries no message.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// errorBody covers the usual shapes of backend error payloads.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Message: extractMessage(body)}
}

func extractMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	if strings.HasPrefix(text, "{") {
		var eb errorBody
		if err := json.Unmarshal([]byte(text), &eb); err != nil {
			return ""
		}
		for _, m := range []string{eb.Message, eb.Error, eb.Detail} {
			if m = strings.TrimSpace(m); m != "" {
				return m
			}
		}
		return ""
	}
	if strings.HasPrefix(text, "<") {
		// html error page
		return ""
	}
	return text
}
