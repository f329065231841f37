package validators

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPath  = errors.New("invalid path")
	ErrFileNotFound = errors.New("config file not found")
)

// PathError describes a rejected configuration target.
// errors.Is(err, ErrInvalidPath) holds for every PathError; a missing file
// additionally matches ErrFileNotFound.
type PathError struct {
	Path   string
	Reason string
	Err    error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func (e *PathError) Is(target error) bool {
	return target == ErrInvalidPath
}
