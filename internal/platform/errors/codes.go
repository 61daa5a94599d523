// Package errors provides structured error handling for the row actions
// platform.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Registration errors
	CodeActionKeyEmpty     Code = "ACTION_KEY_EMPTY"
	CodeActionKindEmpty    Code = "ACTION_KIND_EMPTY"
	CodeBindingKindMissing Code = "BINDING_KIND_MISSING"

	// Async dispatch errors
	CodeActionUnknown    Code = "ACTION_UNKNOWN"
	CodeObjectIDInvalid  Code = "OBJECT_ID_INVALID"
	CodeTokenInvalid     Code = "TOKEN_INVALID"
	CodeTokenExpired     Code = "TOKEN_EXPIRED"
	CodePermissionDenied Code = "PERMISSION_DENIED"
	CodeCallbackInvalid  Code = "CALLBACK_INVALID"
	CodeCallbackFailed   Code = "CALLBACK_FAILED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeActionKeyEmpty,
		CodeActionKindEmpty,
		CodeBindingKindMissing,
		CodeActionUnknown,
		CodeObjectIDInvalid:
		return http.StatusBadRequest

	// Forbidden - caller is not allowed to run the action
	case CodeTokenInvalid,
		CodeTokenExpired,
		CodePermissionDenied:
		return http.StatusForbidden

	// Not found - resource doesn't exist
	case CodeNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
