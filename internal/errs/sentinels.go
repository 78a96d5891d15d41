// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict indicates a conditional write lost its precondition
	// (row already scored, request no longer pending, credit already claimed).
	ErrVersionConflict = errors.New("version conflict")

	// ErrUnauthorized indicates a missing or invalid caller identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates a quota or lockout window is exhausted.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation or duplicate state.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidArgument indicates malformed or missing input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPermissionDenied indicates the caller may not act on the target entity.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrFailedPrecondition indicates the entity is in the wrong state or a balance is short.
	ErrFailedPrecondition = errors.New("failed precondition")

	// ErrAlreadyLinked indicates one of the accounts already has a partner.
	ErrAlreadyLinked = errors.New("already linked")

	// ErrUnavailable indicates an optional collaborator is not configured.
	ErrUnavailable = errors.New("unavailable")

	// ErrInternal indicates a server-side failure whose message may still be shown.
	ErrInternal = errors.New("internal")
)

// Error pairs a sentinel kind with a message that is safe to show to the caller.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// New returns an *Error of the given kind.
func New(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf is New with formatting.
func Newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Message returns the caller-facing message of err, or "" when err carries none.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return ""
}
