package environ

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when setting a variable with an empty name
	// or a name containing '=' or NUL.
	ErrInvalidName = errors.New("invalid environment variable name")
)

// FileError reports a .env file that could not be read or parsed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to load env file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
