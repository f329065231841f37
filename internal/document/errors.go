package document

import (
	"errors"
	"fmt"
)

// ErrValueConversion is matched by every *ConversionError.
var ErrValueConversion = errors.New("value conversion error")

// ConversionError reports a decoded value that has no document
// representation. It only happens when a parser hands over a type the
// document model does not know.
type ConversionError struct {
	// Path is the flat key of the offending node ("" for the root).
	Path string
	// Type is the Go type that could not be converted.
	Type string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ConversionError) Error() string {
	where := e.Path
	if where == "" {
		where = "<root>"
	}
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %s at %s: %v", e.Type, where, e.Err)
	}
	return fmt.Sprintf("cannot convert %s at %s", e.Type, where)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrValueConversion) true for any ConversionError.
func (e *ConversionError) Is(target error) bool {
	return target == ErrValueConversion
}
