package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Decode failures. Every error returned by Unmarshal wraps one of these.
var (
	ErrMalformedVarint    = errors.New("malformed varint")
	ErrTruncated          = errors.New("truncated payload")
	ErrUnknownWireType    = errors.New("unknown wire type")
	ErrWireTypeMismatch   = errors.New("wire type mismatch")
	ErrInvalidEnumValue   = errors.New("invalid enum value")
	ErrUnexpectedEndGroup = errors.New("unexpected end group")
	ErrInvalidFieldNumber = errors.New("invalid field number")
	ErrDepthExceeded      = errors.New("nesting depth exceeded")
	ErrMessageTooLarge    = errors.New("message too large")
)

// Encode failures.
var (
	ErrInvalidValue = errors.New("invalid value for field")
)

// FieldError represents an encoding/decoding error with a field path.
type FieldError struct {
	FieldPath []string // e.g., ["spec", "replica_set", "nodes"]
	Offset    int      // byte offset into the outermost buffer, -1 when encoding
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	var b strings.Builder
	if len(e.FieldPath) > 0 {
		fmt.Fprintf(&b, "error at proto path %s", strings.Join(e.FieldPath, "."))
	} else {
		b.WriteString("error")
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// newFieldError creates an error at the given offset with no path yet.
func newFieldError(offset int, err error) *FieldError {
	return &FieldError{Offset: offset, Err: err}
}

// wrapWithField prefixes the error's path with fieldName.
func wrapWithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Offset:    fe.Offset,
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Offset:    -1,
		Err:       err,
	}
}

// ErrorKind returns a short label for the sentinel wrapped by err.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrMalformedVarint):
		return "malformed_varint"
	case errors.Is(err, ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrUnknownWireType):
		return "unknown_wire_type"
	case errors.Is(err, ErrWireTypeMismatch):
		return "wire_type_mismatch"
	case errors.Is(err, ErrInvalidEnumValue):
		return "invalid_enum"
	case errors.Is(err, ErrUnexpectedEndGroup):
		return "unexpected_end_group"
	case errors.Is(err, ErrInvalidFieldNumber):
		return "invalid_field_number"
	case errors.Is(err, ErrDepthExceeded):
		return "depth_exceeded"
	case errors.Is(err, ErrMessageTooLarge):
		return "too_large"
	case errors.Is(err, ErrInvalidValue):
		return "invalid_value"
	default:
		return "other"
	}
}
