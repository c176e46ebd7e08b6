package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork means no response was received at all.
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized covers 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers 409 responses.
	ErrConflict = errors.New("conflict")

	// ErrUnavailable covers 503 responses.
	ErrUnavailable = errors.New("service unavailable")

	// ErrAPI covers any other non-2xx response.
	ErrAPI = errors.New("api error")
)

// APIError carries the original HTTP classification of a failed request.
// It unwraps to one of the sentinel errors above, so both errors.Is and
// errors.As matching work:
//
//	var apiErr *api.APIError
//	if errors.As(err, &apiErr) { ... apiErr.StatusCode ... }
//	if errors.Is(err, api.ErrNotFound) { ... }
type APIError struct {
	StatusCode int
	Body       string
	kind       error
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s (status %d): %s", e.kind.Error(), e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s (status %d)", e.kind.Error(), e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// classifyStatus maps an HTTP status code to its sentinel error.
func classifyStatus(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusServiceUnavailable:
		return ErrUnavailable
	default:
		return ErrAPI
	}
}

// newStatusError builds the typed error for a non-2xx response.
func newStatusError(code int, body []byte) error {
	return &APIError{StatusCode: code, Body: string(body), kind: classifyStatus(code)}
}
