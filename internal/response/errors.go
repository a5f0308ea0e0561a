package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"
	ErrAdminAccessOnly    ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidDate    ErrCode = "INVALID_DATE"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"

	// ─── Scheduling ────────────────────────────────────────────────────
	ErrNoCourses             ErrCode = "NO_COURSES"
	ErrNoValidDates          ErrCode = "NO_VALID_DATES"
	ErrUnsatisfiableSchedule ErrCode = "UNSATISFIABLE_SCHEDULE"
	ErrScheduleBudget        ErrCode = "SCHEDULE_BUDGET_EXHAUSTED"
	ErrRunInProgress         ErrCode = "RUN_IN_PROGRESS"
	ErrNoSchedule            ErrCode = "NO_SCHEDULE"

	// ─── Seating ───────────────────────────────────────────────────────
	ErrNoEnrollments ErrCode = "NO_ENROLLMENTS"
	ErrInvalidSwap   ErrCode = "INVALID_SWAP"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."
	case ErrTokenExpired:
		return "The authentication token has expired."
	case ErrAdminAccessOnly:
		return "This resource is restricted to administrators."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidDate:
		return "Invalid date format, expected YYYY-MM-DD."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrDependencyExists:
		return "The record cannot be deleted because other records still reference it."

	// ─── Scheduling ────────────────────────────────────────────────────
	case ErrNoCourses:
		return "There are no courses to schedule."
	case ErrNoValidDates:
		return "The requested window contains no schedulable day. Check weekends and holidays."
	case ErrUnsatisfiableSchedule:
		return "No conflict-free schedule exists for this window. Widen the window or reduce gap requirements."
	case ErrScheduleBudget:
		return "The schedule search gave up after exhausting its budget. Widen the window or reduce gap requirements."
	case ErrRunInProgress:
		return "A schedule run is already queued or running."
	case ErrNoSchedule:
		return "No schedule has been produced yet."

	// ─── Seating ───────────────────────────────────────────────────────
	case ErrNoEnrollments:
		return "No students are enrolled in any exam on this date."
	case ErrInvalidSwap:
		return "The requested seat swap is not possible."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
