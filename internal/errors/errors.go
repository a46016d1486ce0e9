// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so that session operations can tell a network failure
// from a server rejection and pull the server's own message out of a response.
//
// The package supports wrapping underlying errors while maintaining error kind information.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Transport indicates the request never produced a response (DNS, refused, timeout).
	Transport Kind = "transport"
	// Rejected indicates a non-2xx response from the API.
	Rejected Kind = "rejected"
	// Unauthorized indicates a 401 response from the API.
	Unauthorized Kind = "unauthorized"
	// Decode indicates a success response whose body could not be used.
	Decode Kind = "decode"
	// Storage indicates a failure of the local credential store.
	Storage Kind = "storage"
	// Invalid indicates input rejected before any request was made.
	Invalid Kind = "invalid"
)

// E wraps an error with kind and human-friendly message.
// Status is the HTTP status code when the error was built from a response.
type E struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *E) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%d %s", e.Status, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Response builds an error from an HTTP status and the server-provided message (may be empty).
func Response(status int, msg string) *E {
	kind := Rejected
	if status == 401 {
		kind = Unauthorized
	}
	return &E{Kind: kind, Message: msg, Status: status}
}

// KindOf returns the kind of the first *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e *E
	if stderrors.As(err, &e) {
		return e.Status
	}
	return 0
}

// ServerMessage returns the message the API sent with a failed response.
// Errors that did not come from a response yield "".
func ServerMessage(err error) string {
	var e *E
	if stderrors.As(err, &e) && e.Status != 0 {
		return e.Message
	}
	return ""
}
