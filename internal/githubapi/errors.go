package githubapi

import "fmt"

type ErrorKind int

const (
	// KindTransport covers network failures, timeouts and unreadable bodies.
	KindTransport ErrorKind = iota
	// KindProtocol covers non-2xx responses.
	KindProtocol
	// KindDecode covers malformed JSON in a 2xx response.
	KindDecode
)

// ApiError is the only error type this package returns. Failure is data,
// not control flow; nothing in here panics.
type ApiError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ApiError) Error() string {
	switch e.Kind {
	case KindProtocol:
		return fmt.Sprintf("HTTPError: %d %s", e.StatusCode, e.Message)
	default:
		return e.Message
	}
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func transportError(err error) *ApiError {
	return &ApiError{Kind: KindTransport, Message: err.Error(), Err: err}
}

func protocolError(statusCode int, reason string) *ApiError {
	return &ApiError{Kind: KindProtocol, StatusCode: statusCode, Message: reason}
}

func decodeError(err error) *ApiError {
	return &ApiError{Kind: KindDecode, Message: err.Error(), Err: err}
}
