package errors

import "net/http"

var (
	ErrInvalidCounty = New(
		"INVALID_COUNTY",
		"County selector does not match any known county",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = New(
		"INVALID_DATE_RANGE",
		"Start date must not be after end date",
		http.StatusBadRequest,
	)

	ErrInvalidParty = New(
		"INVALID_PARTY",
		"Unknown involved party type",
		http.StatusBadRequest,
	)

	ErrSourceUnavailable = New(
		"SOURCE_UNAVAILABLE",
		"Collision records are not available",
		http.StatusServiceUnavailable,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// CodeForStatus returns a generic error code for statuses raised outside the handlers,
// such as unknown routes.
func CodeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "NOT_FOUND"
	case status == http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case status >= http.StatusInternalServerError:
		return ErrInternalServer.Code
	default:
		return ErrInvalidRequest.Code
	}
}
