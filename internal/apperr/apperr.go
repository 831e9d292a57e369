// Package apperr classifies request failures so that a single layer can
// translate them into HTTP statuses and wire bodies.
package apperr

import "errors"

// Kind partitions every failure a handler can produce.
type Kind int

const (
	// Internal is the default: store or transport failures. Detail is
	// logged server-side; clients only see the short message.
	Internal Kind = iota
	// Validation marks a request that breaks the input contract.
	Validation
	// NotFound marks an id-scoped operation that touched zero rows.
	NotFound
)

// Error is a classified error. Msg is safe to send to clients; Err
// carries the underlying cause for the server log.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error with no underlying cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches a classification and client-safe message to err.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the classification of err. Unclassified errors are
// Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the client-safe message for err. Unclassified errors
// map to a generic message so backend detail never leaks to the wire.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal server error"
}
