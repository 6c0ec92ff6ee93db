package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput           ErrorType = "input"
	ErrorTypeParsing         ErrorType = "parsing"
	ErrorTypeUnknownNode     ErrorType = "unknown_node_type"
	ErrorTypeMalformedLit    ErrorType = "malformed_literal"
	ErrorTypeNumericParse    ErrorType = "numeric_parse"
	ErrorTypeRangeOverflow   ErrorType = "range_overflow"
	ErrorTypeTypeMismatch    ErrorType = "type_mismatch"
	ErrorTypeKeyNotFound     ErrorType = "key_not_found"
	ErrorTypeIndexOutOfRange ErrorType = "index_out_of_range"
	ErrorTypeOutput          ErrorType = "output"
	ErrorTypeUnknown         ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// IsType reports whether err is an *AppError of the given type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewUnknownNodeError reports a node in the input tree whose type
// discriminant is outside the recognized set
func NewUnknownNodeError(nodeName, nodeType string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnknownNode,
		Message: fmt.Sprintf("node %q has unknown type %q", nodeName, nodeType),
	}
}

// NewMalformedLiteralError reports a boolean node whose text is not
// exactly "true" or "false"
func NewMalformedLiteralError(nodeName, text string) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedLit,
		Message: fmt.Sprintf("node %q has malformed boolean literal %q", nodeName, text),
	}
}

// NewNumericParseError reports numeric text that cannot be parsed as the
// requested numeric form
func NewNumericParseError(valueName, text, want string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeNumericParse,
		Message: fmt.Sprintf("value %q: cannot parse %q as %s", valueName, text, want),
		Err:     err,
	}
}

// NewRangeOverflowError reports a parsed integer that does not fit the
// requested width
func NewRangeOverflowError(valueName, text, want string) *AppError {
	return &AppError{
		Type:    ErrorTypeRangeOverflow,
		Message: fmt.Sprintf("value %q: %s does not fit in %s", valueName, text, want),
	}
}

// NewTypeMismatchError reports an accessor invoked against a value whose
// type is outside the accepted set. The message names both so the failing
// node can be pinpointed in a large document.
func NewTypeMismatchError(valueName, got, want string) *AppError {
	return &AppError{
		Type:    ErrorTypeTypeMismatch,
		Message: fmt.Sprintf("value %q is %s, want %s", valueName, got, want),
	}
}

// NewKeyNotFoundError reports a missed keyed access, naming both the
// missing key and the containing value
func NewKeyNotFoundError(containerName, key string) *AppError {
	return &AppError{
		Type:    ErrorTypeKeyNotFound,
		Message: fmt.Sprintf("object %q has no member %q", containerName, key),
	}
}

// NewIndexOutOfRangeError reports a missed indexed access, naming the
// containing value
func NewIndexOutOfRangeError(containerName string, index, length int) *AppError {
	return &AppError{
		Type:    ErrorTypeIndexOutOfRange,
		Message: fmt.Sprintf("array %q has no element %d (length %d)", containerName, index, length),
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeUnknownNode, ErrorTypeMalformedLit:
			return fmt.Sprintf("Tree construction error: %s", appErr.Message)
		case ErrorTypeNumericParse, ErrorTypeRangeOverflow:
			return fmt.Sprintf("Numeric error: %s", appErr.Message)
		case ErrorTypeTypeMismatch, ErrorTypeKeyNotFound, ErrorTypeIndexOutOfRange:
			return fmt.Sprintf("Access error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON object or array."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
