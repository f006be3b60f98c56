package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/auth"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/leave"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejection carries the measurement
	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		ErrorWithCode(w, http.StatusForbidden, "OUT_OF_RANGE", attendance.ErrOutOfRange.Error(), map[string]string{
			"distance_m":       strconv.FormatFloat(outOfRange.DistanceM, 'f', -1, 64),
			"allowed_radius_m": strconv.Itoa(outOfRange.AllowedRadiusM),
		})
		return
	}

	switch {
	// Attendance request errors
	case errors.Is(err, attendance.ErrInvalidAction):
		ErrorWithCode(w, http.StatusBadRequest, "INVALID_ACTION", err.Error(), nil)
	case errors.Is(err, attendance.ErrMissingLocation):
		ErrorWithCode(w, http.StatusBadRequest, "MISSING_LOCATION", err.Error(), nil)
	case errors.Is(err, attendance.ErrOfficeNotConfigured):
		ErrorWithCode(w, http.StatusBadRequest, "OFFICE_NOT_CONFIGURED", err.Error(), nil)
	case errors.Is(err, attendance.ErrOutOfRange):
		ErrorWithCode(w, http.StatusForbidden, "OUT_OF_RANGE", err.Error(), nil)

	// Attendance sequencing errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		ErrorWithCode(w, http.StatusConflict, "ALREADY_CHECKED_IN", err.Error(), nil)
	case errors.Is(err, attendance.ErrNoActiveWorkSession):
		ErrorWithCode(w, http.StatusConflict, "NO_ACTIVE_WORK_SESSION", err.Error(), nil)
	case errors.Is(err, attendance.ErrBreakStillOpen):
		ErrorWithCode(w, http.StatusConflict, "BREAK_STILL_OPEN", err.Error(), nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		ErrorWithCode(w, http.StatusConflict, "NOT_CHECKED_IN", err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyOnBreak):
		ErrorWithCode(w, http.StatusConflict, "ALREADY_ON_BREAK", err.Error(), nil)
	case errors.Is(err, attendance.ErrNoActiveBreak):
		ErrorWithCode(w, http.StatusConflict, "NO_ACTIVE_BREAK", err.Error(), nil)
	case errors.Is(err, attendance.ErrConcurrencyConflict):
		ErrorWithCode(w, http.StatusConflict, "CONCURRENCY_CONFLICT", err.Error(), nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, jwt.ErrMissingClaims):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAccessDenied):
		ErrorWithCode(w, http.StatusForbidden, "ACCESS_DENIED", err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrLeaveOverlap):
		Conflict(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipAccessDenied):
		ErrorWithCode(w, http.StatusForbidden, "ACCESS_DENIED", err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
