package storefront

import "fmt"

// NetworkError reports a transport failure: the request never reached the
// server (DNS, connection refused, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError reports that the server responded, but the body was not
// valid JSON. Body carries the raw response text for diagnostics.
type ProtocolError struct {
	Body string
}

func (e *ProtocolError) Error() string {
	if e.Body == "" {
		return "server error: empty response"
	}
	return fmt.Sprintf("server error: %s", e.Body)
}

// RemoteError reports that the server processed the request and rejected it.
// Message is the server-supplied message field when present, otherwise a
// generic text derived from the HTTP status.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// ValidationError reports a client-side validation failure. It is raised
// before any network call is attempted, so a validation failure never
// produces a partial server-side write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
