package errdefs

import "errors"

var (
	// ErrInvalidParameter signals that the user input is invalid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFound signals that the requested object doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupported indicates that the action was not supported.
	ErrUnsupported = errors.New("unsupported")

	// ErrSystem signals that some internal error occurred, such as a failed
	// write to the output or a broken input file.
	ErrSystem = errors.New("system error")
)
