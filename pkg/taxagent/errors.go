package taxagent

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ConvertError represents an error during conversion.
type ConvertError struct {
	Path  string
	Stage string // "open", "read", "parse", "write"
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// NewConvertError creates a new ConvertError.
func NewConvertError(path, stage string, err error) *ConvertError {
	return &ConvertError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
