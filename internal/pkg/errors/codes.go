package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrAuthValidation = New(
		"AUTH_VALIDATION",
		"Invalid credentials format",
		http.StatusBadRequest,
	)

	ErrUnauthenticated = New(
		"UNAUTHENTICATED",
		"Sign in to continue",
		http.StatusUnauthorized,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Session expired or signed out",
		http.StatusUnauthorized,
	)

	ErrReportQuotaExhausted = New(
		"QUOTA_EXHAUSTED",
		"You have no more reports remaining. Each account has a limited number of reports.",
		http.StatusForbidden,
	)

	ErrUpvoteQuotaExhausted = New(
		"QUOTA_EXHAUSTED",
		"You have no more upvotes remaining. Each account has a limited number of upvotes.",
		http.StatusForbidden,
	)

	ErrReportNotFound = New(
		"REPORT_NOT_FOUND",
		"Report not found",
		http.StatusNotFound,
	)

	ErrConfirmationRequired = New(
		"CONFIRMATION_REQUIRED",
		"Are you sure you want to delete this report?",
		http.StatusConflict,
	)

	ErrInvalidReport = New(
		"INVALID_REPORT",
		"Location name, address and description are required",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrNoCandidatePin = New(
		"NO_CANDIDATE_PIN",
		"Tap the map to choose a location first",
		http.StatusConflict,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
