package errors

import (
	"strings"

	"github.com/anhlog/wms/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// FieldError names the request field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level failures for one request. It maps to
// HTTP 400 and is detected before any mutation happens.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (v ValidationError) Error() string {
	msgs := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationError) ErrorCode() string {
	return constant.ErrorTypeCode[constant.ErrInvalidRequest]
}

func (v ValidationError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[constant.ErrInvalidRequest]
}

func NewValidationError(fields ...FieldError) ValidationError {
	return ValidationError{Fields: fields}
}
