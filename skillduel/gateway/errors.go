package gateway

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when no session is available to attach
// to an outbound request.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a non-2xx response from the server, with the detail message
// extracted from the response body when the server provided one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error %d: request failed", e.Status)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
