package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy of the error carrying details, leaving the
// package-level sentinel untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage returns a copy of the error with a different message.
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// FieldError - one invalid field of a request payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WithFields attaches field-scoped validation errors.
func (e *AppError) WithFields(fields []FieldError) *AppError {
	return e.WithDetails(map[string]interface{}{"fields": fields})
}
