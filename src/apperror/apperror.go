package apperror

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeNotFound   Code = "NOT_FOUND"
	CodeDatabase   Code = "DATABASE_ERROR"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// Metadata describes how a code is presented to HTTP callers.
type Metadata struct {
	HTTPStatus int
	// DetailPrefix is prepended to the message in the response detail.
	DetailPrefix string
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {HTTPStatus: http.StatusUnprocessableEntity},
	CodeNotFound:   {HTTPStatus: http.StatusNotFound},
	CodeDatabase:   {HTTPStatus: http.StatusInternalServerError, DetailPrefix: "Database error: "},
	CodeInternal:   {HTTPStatus: http.StatusInternalServerError},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details map[string]string
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

// Database wraps a driver or connectivity failure, keeping the driver text as message.
func Database(err error) *Error {
	if err == nil {
		return nil
	}
	return Wrap(CodeDatabase, err, err.Error())
}

// Internal wraps an unexpected failure, keeping its raw description as message.
func Internal(err error) *Error {
	if err == nil {
		return nil
	}
	return Wrap(CodeInternal, err, err.Error())
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() map[string]string {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details map[string]string) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

// Detail is the text returned to HTTP callers.
func (e *Error) Detail() string {
	if e == nil {
		return ""
	}
	return MetadataFor(e.code).DetailPrefix + e.message
}

func (e *Error) HTTPStatus() int {
	return MetadataFor(e.Code()).HTTPStatus
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As returns the first *Error in err's chain, or nil.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// From returns err as *Error, wrapping untyped errors as internal failures.
func From(err error) *Error {
	if err == nil {
		err = stdErrors.New("unknown error")
	}
	if typed := As(err); typed != nil {
		return typed
	}
	return Internal(err)
}

func IsNotFound(err error) bool {
	typed := As(err)
	return typed != nil && typed.Code() == CodeNotFound
}
