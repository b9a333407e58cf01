package header

import "fmt"

// NewFormatError creates a new FormatError for the named header.
func NewFormatError(name, value string, err error) error {
	return &FormatError{Name: name, Value: value, err: err}
}

// FormatError indicates that the value of a header is not a base-10 integer.
type FormatError struct {
	Name  string
	Value string
	err   error
}

// Error is part of the error builtin.
func (e FormatError) Error() string {
	return fmt.Sprintf("invalid value %q for header %s: %v", e.Value, e.Name, e.err)
}

// Unwrap returns the parsing error.
func (e FormatError) Unwrap() error {
	return e.err
}

// NewInvalidEnumValueError creates a new InvalidEnumValueError for the named header.
func NewInvalidEnumValueError(name string, value int) error {
	return &InvalidEnumValueError{Name: name, Value: value}
}

// InvalidEnumValueError indicates that the integer value of a header is not
// one of the codes its property accepts.
type InvalidEnumValueError struct {
	Name  string
	Value int
}

// Error is part of the error builtin.
func (e InvalidEnumValueError) Error() string {
	return fmt.Sprintf("unknown value %d for header %s", e.Value, e.Name)
}
