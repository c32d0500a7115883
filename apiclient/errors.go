package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
)

// HTTPError is returned for any response with a 4xx or 5xx status.
type HTTPError struct {
	Method string
	URL    string
	Status int
	// Payload is the server's decoded JSON error body, nil if the body was not JSON.
	Payload any
	Body    []byte
}

func newHTTPError(method, url string, status int, body []byte) *HTTPError {
	e := &HTTPError{
		Method: method,
		URL:    url,
		Status: status,
		Body:   body,
	}
	var payload any
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		e.Payload = payload
	}
	return e
}

func (e *HTTPError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, msg)
	}
	return fmt.Sprintf("%s %s: status %d %s", e.Method, e.URL, e.Status, http.StatusText(e.Status))
}

// Message returns the "message" field of the server payload. Validation errors that
// carry a list of messages are joined.
func (e *HTTPError) Message() string {
	m, ok := e.Payload.(map[string]any)
	if !ok {
		return ""
	}
	switch msg := m["message"].(type) {
	case string:
		return msg
	case []any:
		out := ""
		for i, part := range msg {
			if i > 0 {
				out += "; "
			}
			out += fmt.Sprint(part)
		}
		return out
	}
	if msg, ok := m["error"].(string); ok {
		return msg
	}
	return ""
}

// Is lets errors.Is(err, errors.ErrUnauthorized) match a 401 response.
func (e *HTTPError) Is(target error) bool {
	return target == errors.ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}

// IsSuperseded reports whether err only means that a newer identical request took over.
// Callers should ignore such errors.
func IsSuperseded(err error) bool {
	return errors.Is(err, errors.ErrSuperseded)
}
