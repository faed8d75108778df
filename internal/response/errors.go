package response

import "net/http"

// ErrCode is a typed error code enum for consistent API error identification.
// Every code carries the HTTP status it is sent with.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrUnknownIdentifier  ErrCode = "UNKNOWN_IDENTIFIER"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrCourseNotFound  ErrCode = "COURSE_NOT_FOUND"
	ErrStudentNotFound ErrCode = "STUDENT_NOT_FOUND"

	// ─── Availability ──────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"
	ErrUnavailable       ErrCode = "SERVICE_UNAVAILABLE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

type codeInfo struct {
	status  int
	message string
}

var codes = map[ErrCode]codeInfo{
	ErrUnknownIdentifier:  {http.StatusNotFound, "No user matches that email or student ID."},
	ErrSessionInvalidated: {http.StatusUnauthorized, "Your session has ended. Please log in again."},
	ErrTokenRequired:      {http.StatusUnauthorized, "Authentication token is required."},
	ErrTokenInvalid:       {http.StatusUnauthorized, "Authentication token is invalid."},

	ErrValidation:     {http.StatusBadRequest, "Validation failed. Please check your input."},
	ErrInvalidPayload: {http.StatusBadRequest, "Request payload is invalid."},

	ErrNotFound:        {http.StatusNotFound, "Resource not found."},
	ErrCourseNotFound:  {http.StatusNotFound, "Course not found."},
	ErrStudentNotFound: {http.StatusNotFound, "Student not found."},

	ErrRateLimitExceeded: {http.StatusTooManyRequests, "Too many requests. Please try again later."},
	ErrUnavailable:       {http.StatusServiceUnavailable, "A backing service is unavailable."},

	ErrInternal: {http.StatusInternalServerError, "An internal server error occurred."},
}

// Status returns the HTTP status for the code. Unknown codes map to 500.
func (c ErrCode) Status() int {
	if info, ok := codes[c]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	if info, ok := codes[code]; ok {
		return info.message
	}
	return "An unexpected error occurred."
}
