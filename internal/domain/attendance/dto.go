package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
)

// ========================================
// ATTENDANCE CHECK DTOs
// ========================================

// CheckRequest is the body of POST /attendance/check. Coordinates are pointers so that
// a missing value can be told apart from 0.
type CheckRequest struct {
	Action    string   `json:"action"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type CheckResponse struct {
	AttendanceID   string  `json:"attendance_id"`
	Action         Action  `json:"action"`
	State          State   `json:"state"`
	Message        string  `json:"message"`
	Timestamp      string  `json:"timestamp"`
	DistanceM      float64 `json:"distance_m"`
	AllowedRadiusM int     `json:"allowed_radius_m"`
}

// ========================================
// ATTENDANCE READ DTOs
// ========================================

type AttendanceResponse struct {
	ID              string   `json:"id"`
	EmployeeID      string   `json:"employee_id"`
	Kind            string   `json:"kind"`
	CheckIn         string   `json:"check_in"`
	CheckOut        *string  `json:"check_out,omitempty"`
	InLatitude      *float64 `json:"in_latitude,omitempty"`
	InLongitude     *float64 `json:"in_longitude,omitempty"`
	OutLatitude     *float64 `json:"out_latitude,omitempty"`
	OutLongitude    *float64 `json:"out_longitude,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
}

type TimeLogs struct {
	ClockIn    *string `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
}

type TodayLogResponse struct {
	Date          string   `json:"date"`
	State         State    `json:"state"`
	WorkedMinutes int      `json:"worked_minutes"`
	BreakMinutes  int      `json:"break_minutes"`
	TimeLogs      TimeLogs `json:"time_logs"`
}

type StatusResponse struct {
	State            State    `json:"state"`
	OpenWorkID       *string  `json:"open_work_id,omitempty"`
	OpenBreakID      *string  `json:"open_break_id,omitempty"`
	Since            *string  `json:"since,omitempty"`
	AllowedActions   []Action `json:"allowed_actions"`
	OfficeConfigured bool     `json:"office_configured"`
	AllowedRadiusM   int      `json:"allowed_radius_m"`
}

type MyAttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Kind      *string `json:"kind,omitempty"`       // work, break

	// Instant bounds derived from StartDate/EndDate in the company timezone.
	CheckInFrom *time.Time `json:"-"`
	CheckInTo   *time.Time `json:"-"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Kind != nil && !validator.IsInSlice(*f.Kind, []string{KindWork, KindBreak}) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: work, break",
		})
	}

	var startOK, endOK bool
	if f.StartDate != nil && *f.StartDate != "" {
		if _, startOK = validator.IsValidDate(*f.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, endOK = validator.IsValidDate(*f.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && *f.EndDate < *f.StartDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
		f.SortOrder = strings.ToLower(f.SortOrder)
	} else {
		f.SortOrder = "desc" // newest first
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}
