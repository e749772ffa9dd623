package adapter

import (
	"errors"
	"fmt"
)

// ErrServerUnreachable is returned when the request never produced an HTTP
// response (connection refused, timeout, DNS failure).
var ErrServerUnreachable = errors.New("server unreachable")

// ServerError carries a non-2xx response from the service: the status code
// and the client-facing message from the {"error": "..."} body. Error()
// returns the message alone so the UI can display it verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
	return e.Message
}
