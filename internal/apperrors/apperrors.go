package apperrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeTransactionFailure = "TRANSACTION_FAILURE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Error is a domain error carrying a stable code and a human-readable
// message. Services return these; handlers map them to HTTP responses.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error without changing what the caller sees.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Code: e.Code, Message: e.Message, cause: cause}
}

// Unauthenticated means the caller's identity could not be resolved.
func Unauthenticated(message string) *Error {
	if message == "" {
		message = "Authentication required"
	}
	return &Error{Code: CodeUnauthenticated, Message: message}
}

// Unauthorized means the caller is known but the action is denied.
func Unauthorized(message string) *Error {
	if message == "" {
		message = "Access denied"
	}
	return &Error{Code: CodeUnauthorized, Message: message}
}

// NotFound means the target record does not exist (or is not visible in
// the caller's organization).
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{Code: CodeNotFound, Message: message}
}

// Conflict means a uniqueness or consistency constraint was violated and
// the caller can correct the request.
func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// Invalid means the request itself is malformed or references an invalid target.
func Invalid(message string) *Error {
	if message == "" {
		message = "Invalid request"
	}
	return &Error{Code: CodeInvalidInput, Message: message}
}

// TransactionFailure means an atomic multi-write failed and was rolled
// back; no partial state is observable, so the request is safe to retry.
func TransactionFailure(cause error) *Error {
	return &Error{Code: CodeTransactionFailure, Message: "Operation failed, please retry", cause: cause}
}

// Internal wraps an unexpected failure.
func Internal(cause error) *Error {
	return &Error{Code: CodeInternalError, Message: "Internal server error", cause: cause}
}

// statusOf maps an error code to its HTTP status.
func statusOf(code string) int {
	switch code {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeTransactionFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error response. Unknown error values are
// folded into a generic internal error so details never leak.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}
	c.JSON(statusOf(appErr.Code), gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// AbortWith writes err and aborts the middleware chain.
func AbortWith(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}

// BadRequest sends a 400 response for malformed request bodies.
func BadRequest(c *gin.Context, message string) {
	Respond(c, Invalid(message))
}
