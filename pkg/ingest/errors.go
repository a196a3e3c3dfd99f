package ingest

import (
	"errors"
	"fmt"

	"github.com/dersesut/equipimport/pkg/ingest/reader"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrDecode indicates the input is not a readable spreadsheet container.
var ErrDecode = errors.New("invalid spreadsheet")

// DecodeError reports that workbook bytes could not be decoded.
type DecodeError struct {
	Format reader.Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s workbook: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes every DecodeError match ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(format reader.Format, err error) *DecodeError {
	return &DecodeError{
		Format: format,
		Err:    err,
	}
}
