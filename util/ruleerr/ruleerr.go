// Package ruleerr provides the typed errors returned when a block header
// field fails validation.
package ruleerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// FormatError identifies a field whose textual representation is malformed,
// such as a hash string with the wrong length or non-hexadecimal characters.
type FormatError struct {
	// Field is the name of the header field the malformed value was
	// supplied for.
	Field string

	// Description describes what is wrong with the value.
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e FormatError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Description)
}

// NewFormatError creates a FormatError given a field name and description.
func NewFormatError(field, description string) FormatError {
	return FormatError{Field: field, Description: description}
}

// RangeError identifies a field whose numeric value falls outside the range
// the wire format can represent, such as a compact target whose exponent
// does not fit a 32-byte target.
type RangeError struct {
	// Field is the name of the header field the out-of-range value was
	// supplied for.
	Field string

	// Description describes what is wrong with the value.
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %s", e.Field, e.Description)
}

// NewRangeError creates a RangeError given a field name and description.
func NewRangeError(field, description string) RangeError {
	return RangeError{Field: field, Description: description}
}

// IsFormatError returns whether err is or wraps a FormatError.
func IsFormatError(err error) bool {
	var formatErr FormatError
	return errors.As(err, &formatErr)
}

// IsRangeError returns whether err is or wraps a RangeError.
func IsRangeError(err error) bool {
	var rangeErr RangeError
	return errors.As(err, &rangeErr)
}
