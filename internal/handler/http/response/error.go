package response

import (
	"errors"
	"net/http"

	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/auth"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/leave"
	"github.com/clockwise-hq/timeclock-backend-go/internal/domain/user"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthDisabled):
		Forbidden(w, "Google sign-in is not configured")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "Invalid oauth state")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Not clocked in")
	case errors.Is(err, attendance.ErrAlreadyOnBreak):
		Conflict(w, "Already on break")
	case errors.Is(err, attendance.ErrNotOnBreak):
		Conflict(w, "Not on break")
	case errors.Is(err, attendance.ErrAlreadyUnavailable):
		Conflict(w, "Already unavailable")
	case errors.Is(err, attendance.ErrNotUnavailable):
		Conflict(w, "Not unavailable")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveNotPending):
		Conflict(w, "Only pending leave requests can be cancelled")
	case errors.Is(err, leave.ErrLeaveAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Not authorized to act on this leave request")
	case errors.Is(err, leave.ErrInvalidReviewDecision):
		BadRequest(w, "Review decision must be approved or rejected", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
