// Package cerr provides the client-side error taxonomy. Each error
// category is represented by a Kind, while an optional HTTP status
// code records the server response which caused the failure (zero when
// the request never completed, e.g., on a transport failure).
package cerr

import (
	"errors"
	"fmt"
)

// Kind classifies a client failure. The propagation policy is decided
// by kind alone: auth and registration failures stay transient and
// user-visible, a session failure escalates to a full session
// invalidation, and a link operation failure stays local to the
// accompanying drivers panel.
type Kind int

const (
	// KindAuthRejected marks a login rejected with bad credentials.
	KindAuthRejected Kind = iota + 1
	// KindServiceUnavailable marks a 5xx response or a failure of the
	// network call itself.
	KindServiceUnavailable
	// KindUnauthorizedSession marks any failure while loading the
	// dashboard data; it is treated as an invalid session.
	KindUnauthorizedSession
	// KindValidationRejected marks a non-2xx registration response;
	// the server-provided message is surfaced verbatim.
	KindValidationRejected
	// KindResourceOperationFailed marks a failed delete operation on
	// an accompanying driver link.
	KindResourceOperationFailed
)

// String returns a stable name of the kind, suitable for logging.
func (k Kind) String() string {
	switch k {
	case KindAuthRejected:
		return "auth-rejected"
	case KindServiceUnavailable:
		return "service-unavailable"
	case KindUnauthorizedSession:
		return "unauthorized-session"
	case KindValidationRejected:
		return "validation-rejected"
	case KindResourceOperationFailed:
		return "resource-operation-failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error wraps an underlying error with its client-side Kind and the
// HTTP status code of the response which caused it, if any.
type Error struct {
	Err            error
	Kind           Kind
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.HTTPStatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
	}
	return fmt.Sprintf(
		"%s: [%d] %s", e.Kind, e.HTTPStatusCode, e.Err.Error(),
	)
}

// AuthRejected creates a KindAuthRejected error, wrapping err.
func AuthRejected(status int, err error) *Error {
	return &Error{Err: err, Kind: KindAuthRejected, HTTPStatusCode: status}
}

// ServiceUnavailable creates a KindServiceUnavailable error, wrapping
// err. The status argument may be zero for pure transport failures.
func ServiceUnavailable(status int, err error) *Error {
	return &Error{
		Err: err, Kind: KindServiceUnavailable, HTTPStatusCode: status,
	}
}

// UnauthorizedSession creates a KindUnauthorizedSession error,
// wrapping err.
func UnauthorizedSession(status int, err error) *Error {
	return &Error{
		Err: err, Kind: KindUnauthorizedSession, HTTPStatusCode: status,
	}
}

// ValidationRejected creates a KindValidationRejected error, wrapping
// err which should carry the server message verbatim.
func ValidationRejected(status int, err error) *Error {
	return &Error{
		Err: err, Kind: KindValidationRejected, HTTPStatusCode: status,
	}
}

// ResourceOperationFailed creates a KindResourceOperationFailed error,
// wrapping err.
func ResourceOperationFailed(status int, err error) *Error {
	return &Error{
		Err:            err,
		Kind:           KindResourceOperationFailed,
		HTTPStatusCode: status,
	}
}

// KindOf extracts the Kind of err if it is (or wraps) a cerr.Error,
// otherwise, it returns zero.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

// Is reports whether err is (or wraps) a cerr.Error of kind k.
func Is(err error, k Kind) bool {
	return KindOf(err) == k
}
