package schema

import (
	"errors"
	"fmt"
)

var (
	ErrFieldNotFound   = errors.New("field not found")
	ErrBlockNotFound   = errors.New("block not found")
	ErrValueConversion = errors.New("value conversion failed")
)

// ValueError reports a field value that does not convert to the requested
// type, with no usable default.
type ValueError struct {
	Key      string
	Expected string
	Actual   string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("field %s: cannot convert %q to %s", e.Key, e.Actual, e.Expected)
}

func (e *ValueError) Is(target error) bool {
	return target == ErrValueConversion
}
