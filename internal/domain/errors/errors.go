package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// Business error codes surfaced to the operator
const (
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeInvalidFormat      = "INVALID_FORMAT"
	CodeMissingTarget      = "MISSING_TARGET"
	CodePartialLinkFailure = "PARTIAL_LINK_FAILURE"
	CodeRejected           = "REJECTED"
	CodeTransportFailure   = "TRANSPORT_FAILURE"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so a copy made
// by WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"Invalid argument",
		"",
	)

	ErrInvalidFormat = NewBaseError(
		http.StatusUnprocessableEntity,
		CodeInvalidFormat,
		"Channel value must be a JSON object",
		"",
	)

	ErrMissingTarget = NewBaseError(
		http.StatusBadRequest,
		CodeMissingTarget,
		"Select a target user before sending",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"Input validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"Resource not found",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Console session not found or expired",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"Too many open console sessions, close one and try again",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternal,
		"Internal error",
		"",
	)
)

// RejectedError is returned when the backend answered with a non-success
// status. Reason carries the backend's detail text verbatim.
type RejectedError struct {
	status int
	reason string
}

func NewRejectedError(status int, reason string) *RejectedError {
	if reason == "" {
		reason = http.StatusText(status)
	}

	return &RejectedError{status: status, reason: reason}
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("backend rejected request (%d): %s", e.status, e.reason)
}

// HTTPCode mirrors client errors and reports anything else as a bad gateway
func (e *RejectedError) HTTPCode() int {
	if e.status >= 400 && e.status < 500 {
		return e.status
	}

	return http.StatusBadGateway
}

func (e *RejectedError) ErrorCode() string {
	return CodeRejected
}

func (e *RejectedError) Message() string {
	return e.reason
}

func (e *RejectedError) Details() string {
	return ""
}

// Is lets a backend 404 match ErrNotFound
func (e *RejectedError) Is(target error) bool {
	return e.status == http.StatusNotFound && target == error(ErrNotFound)
}

// Status is the HTTP status the backend answered with
func (e *RejectedError) Status() int {
	return e.status
}

// Reason is the backend's message, unmodified
func (e *RejectedError) Reason() string {
	return e.reason
}

// TransportError means the backend could not be reached or never answered
type TransportError struct {
	err error
}

func NewTransportError(err error) *TransportError {
	return &TransportError{err: err}
}

func (e *TransportError) Error() string {
	return errors.Wrap(e.err, "notification backend unreachable").Error()
}

func (e *TransportError) Unwrap() error {
	return e.err
}

func (e *TransportError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *TransportError) ErrorCode() string {
	return CodeTransportFailure
}

func (e *TransportError) Message() string {
	return "Notification backend is unreachable"
}

func (e *TransportError) Details() string {
	return ""
}

// PartialLinkError reports a channel profile that was created but could not
// be attached to its user. The profile is left in place; only the link write
// needs to be retried.
type PartialLinkError struct {
	ProfileID int64
	UserID    int64
	err       error
}

func NewPartialLinkError(profileID, userID int64, err error) *PartialLinkError {
	return &PartialLinkError{ProfileID: profileID, UserID: userID, err: err}
}

func (e *PartialLinkError) Error() string {
	return errors.Wrapf(e.err, "profile %d created but not linked to user %d", e.ProfileID, e.UserID).Error()
}

func (e *PartialLinkError) Unwrap() error {
	return e.err
}

func (e *PartialLinkError) HTTPCode() int {
	return http.StatusConflict
}

func (e *PartialLinkError) ErrorCode() string {
	return CodePartialLinkFailure
}

func (e *PartialLinkError) Message() string {
	return "Profile saved but could not be linked to the user; retry the link"
}

func (e *PartialLinkError) Details() string {
	return fmt.Sprintf("profile_id=%d user_id=%d", e.ProfileID, e.UserID)
}

// Code returns the business code of the outermost AppError in err's chain,
// or CodeInternal when there is none.
func Code(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return CodeInternal
}
