package apperrors

import (
	"errors"
	"fmt"
)

// Validation error codes surfaced to API clients
const (
	CodeDownPaymentExceedsTotal = "down_payment_exceeds_total"
	CodePercentageOutOfRange    = "percentage_out_of_range"
	CodeReferenceRequired       = "reference_required"
	CodeVenueInclusionLocked    = "venue_inclusion_locked"
	CodeComponentNotRemovable   = "component_not_removable"
	CodeComponentNotFound       = "component_not_found"
	CodeVenueOptionNotFound     = "venue_option_not_found"
	CodeDamageRecordRequired    = "damage_record_required"
	CodeInvalidStatus           = "invalid_status"
	CodeInvalidMethod           = "invalid_method"
	CodeNegativeAmount          = "negative_amount"
)

// InputShapeError reports a malformed catalog record at ingestion.
// Malformed records are rejected, never coerced.
type InputShapeError struct {
	Field  string
	Reason string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("invalid catalog input: %s: %s", e.Field, e.Reason)
}

// NewInputShape creates an InputShapeError
func NewInputShape(field, reason string) *InputShapeError {
	return &InputShapeError{Field: field, Reason: reason}
}

// ValidationError reports a mutation that would violate an invariant.
// The mutation is refused and the prior valid state is retained.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Code, e.Message)
}

// NewValidation creates a ValidationError
func NewValidation(code, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// AsValidation unwraps err into a ValidationError if it is one
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsInputShape unwraps err into an InputShapeError if it is one
func AsInputShape(err error) (*InputShapeError, bool) {
	var se *InputShapeError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
