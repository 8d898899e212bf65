package dto

import "net/http"

// Transport-level error codes. Domain error codes pass through to the
// client unchanged; the map below assigns each one an HTTP status.
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeUnauthorized is used when authentication is missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks permission
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeInternal:     http.StatusInternalServerError,

	// Ownership gate: a missing project and a foreign project are
	// indistinguishable to the caller
	"NOT_AUTHORIZED": http.StatusForbidden,

	"NOT_FOUND":          http.StatusNotFound,
	"STAGE_NOT_FOUND":    http.StatusNotFound,
	"UNKNOWN_CHECK_ITEM": http.StatusUnprocessableEntity,
	"STORAGE_FAILURE":    http.StatusInternalServerError,

	// Domain validation failures
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_SLUG":         http.StatusBadRequest,
	"INVALID_TITLE":        http.StatusBadRequest,
	"INVALID_NAME":         http.StatusBadRequest,
	"INVALID_OWNER":        http.StatusBadRequest,
	"INVALID_STAGE":        http.StatusBadRequest,
	"INVALID_STATUS":       http.StatusBadRequest,
	"INVALID_BODY":         http.StatusBadRequest,
	"INVALID_STORAGE_PATH": http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
