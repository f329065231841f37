package loader

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	ErrNoTarget          = errors.New("no configuration target given")
)

// LoadFileError reports a configuration file that could not be read.
type LoadFileError struct {
	Path string
	Err  error
}

func (e *LoadFileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to load file %s", e.Path)
}

func (e *LoadFileError) Unwrap() error {
	return e.Err
}

// ParseError reports a configuration file its parser rejected.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s file %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
