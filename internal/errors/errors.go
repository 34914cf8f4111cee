package errors

import (
	"errors"
	"fmt"
)

// PipelineError represents a structured pipeline failure with a stable code.
// Per-record data defects are never represented as errors; they are repaired
// or dropped during normalization. PipelineError is reserved for call-level
// failures: malformed batches, unknown parameters, export problems.
type PipelineError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a new PipelineError with the given code and message
func New(code, message string) *PipelineError {
	return &PipelineError{Code: code, Message: message}
}

// NewWithDetails creates a new PipelineError with additional details
func NewWithDetails(code, message string, details interface{}) *PipelineError {
	return &PipelineError{Code: code, Message: message, Details: details}
}

// Predefined error codes for common scenarios
var (
	ErrInputFormat         = New("INPUT_FORMAT", "Batch is not record-shaped")
	ErrMissingColumn       = New("MISSING_COLUMN", "Required column is missing")
	ErrUnknownGroupKey     = New("UNKNOWN_GROUP_KEY", "Unknown grouping key")
	ErrUnknownCategoryList = New("UNKNOWN_CATEGORY_LIST", "Unknown category list")
	ErrUnknownPeriod       = New("UNKNOWN_PERIOD", "Unknown time period")
	ErrInvalidParameter    = New("INVALID_PARAMETER", "Invalid parameter value")
	ErrExportFailed        = New("EXPORT_FAILED", "Export operation failed")
)

// InputFormatError creates an input shape error naming the offending batch
func InputFormatError(batch string, err error) *PipelineError {
	return NewWithDetails("INPUT_FORMAT", fmt.Sprintf("batch %s is not record-shaped", batch), err.Error())
}

// MissingColumnError creates an error naming the absent column
func MissingColumnError(column string) *PipelineError {
	return NewWithDetails("MISSING_COLUMN", fmt.Sprintf("required column %q is missing", column), column)
}

// UnknownGroupKeyError creates a configuration error naming the bad key
func UnknownGroupKeyError(key string) *PipelineError {
	return NewWithDetails("UNKNOWN_GROUP_KEY", fmt.Sprintf("unknown grouping key %q", key), key)
}

// UnknownPeriodError creates a configuration error naming the bad period
func UnknownPeriodError(period string) *PipelineError {
	return NewWithDetails("UNKNOWN_PERIOD", fmt.Sprintf("unknown time period %q", period), period)
}

// InvalidParameterError creates an error naming the offending parameter
func InvalidParameterError(param string, err error) *PipelineError {
	return NewWithDetails("INVALID_PARAMETER", fmt.Sprintf("invalid parameter %q", param), err.Error())
}

// Code extracts the error code from an error chain, or "" for non-pipeline errors
func Code(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsCode reports whether err carries the given pipeline error code
func IsCode(err error, code string) bool {
	return Code(err) == code
}
