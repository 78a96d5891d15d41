// Package service contains the application services behind the RPC surface
// and the storage event handlers.
package service

import (
	"errors"
	"fmt"

	"github.com/dareus/dareguard/internal/errs"
)

// Fixed user-facing messages shared by several services.
const (
	msgUserNotFound = "User not found"
)

// userErr maps a repository lookup failure: ErrNotFound becomes a
// caller-facing NotFound, anything else is wrapped with op.
func userErr(op string, err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errs.New(errs.ErrNotFound, msgUserNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
