package common

import "net/http"

// AppError ties an API error code and HTTP status to an underlying cause.
// Handlers unwrap it with errors.As to pick the response code and body.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    any
}

// Error reports the underlying cause when present, the message otherwise.
func (e *AppError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Message
	}
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError builds an AppError from its parts.
func NewAppError(code, message string, status int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

// BadRequest is the canonical 400 error for malformed request payloads.
func BadRequest(message string, err error) *AppError {
	return NewAppError("BAD_REQUEST", message, http.StatusBadRequest, err)
}

// PayloadTooLarge is the canonical 413 error for oversized request bodies.
func PayloadTooLarge(err error) *AppError {
	return NewAppError("PAYLOAD_TOO_LARGE", "request body too large", http.StatusRequestEntityTooLarge, err)
}
