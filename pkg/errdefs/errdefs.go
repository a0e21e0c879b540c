// Package errdefs defines general error kinds and the helpers to attach
// context to them without losing errors.Is matching.
package errdefs

import (
	"errors"
	"fmt"
)

// Newf joins the base error with a message formatted by fmt.Errorf.
func Newf(base error, format string, args ...any) error {
	return errors.Join(base, fmt.Errorf(format, args...))
}

// NewE joins the base error with err. It returns err untouched when err is
// nil or already matches base.
func NewE(base error, err error) error {
	if err == nil || errors.Is(err, base) {
		return err
	}
	return errors.Join(base, err)
}
