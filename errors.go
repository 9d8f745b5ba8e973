package wavefile

import "fmt"

// FormatError reports malformed or semantically invalid container
// contents: bad tags, length mismatches, unsupported compression,
// out-of-range header fields, or a premature end of input. A FormatError
// raised during open leaves no usable handle; one raised during a frame
// operation leaves the handle at an indeterminate position and it should
// be closed and discarded.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "wavefile: " + e.Reason
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidOperationError reports caller misuse of a handle, such as a
// read issued against a container opened for writing. It is never caused
// by the container contents.
type InvalidOperationError struct {
	Op     string
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return "wavefile: " + e.Op + ": " + e.Reason
}

func invalidOpf(op, format string, args ...any) error {
	return &InvalidOperationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
