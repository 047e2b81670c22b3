package service

import "errors"

// Error kinds. Every operation fails with exactly one of these; the
// HTTP layer maps them to 401/403/404/400 and treats anything else as
// a 500.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalid         = errors.New("invalid input")
)

// Error pairs a kind with a caller-facing message, in the same spirit
// as a grpc status.Error(code, msg).
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func invalid(msg string) error   { return &Error{kind: ErrInvalid, msg: msg} }
func notFound(msg string) error  { return &Error{kind: ErrNotFound, msg: msg} }
func forbidden(msg string) error { return &Error{kind: ErrForbidden, msg: msg} }
