package employee

import (
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
)

// Caller identifies the authenticated user performing a directory mutation.
type Caller struct {
	UserID    string
	CompanyID string
	Role      user.Role
}

type UpdateOfficeRequest struct {
	OfficeLatitude  float64 `json:"office_latitude"`
	OfficeLongitude float64 `json:"office_longitude"`
	AllowedRadiusM  *int    `json:"allowed_radius_m,omitempty"`
}

func (r *UpdateOfficeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !utils.IsValidCoordinate(r.OfficeLatitude, 0) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "office_latitude must be between -90 and 90",
		})
	}
	if !utils.IsValidCoordinate(0, r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "office_longitude must be between -180 and 180",
		})
	}
	if r.AllowedRadiusM != nil && (*r.AllowedRadiusM <= 0 || *r.AllowedRadiusM > 50000) {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_radius_m",
			Message: "allowed_radius_m must be between 1 and 50000",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OfficeResponse struct {
	Configured     bool     `json:"configured"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	AllowedRadiusM int      `json:"allowed_radius_m"`
}

type EmployeeResponse struct {
	ID           string         `json:"id"`
	EmployeeCode string         `json:"employee_code"`
	FullName     string         `json:"full_name"`
	JobTitle     *string        `json:"job_title,omitempty"`
	WorkEmail    *string        `json:"work_email,omitempty"`
	PhoneNumber  *string        `json:"phone_number,omitempty"`
	AvatarURL    *string        `json:"avatar_url,omitempty"`
	Office       OfficeResponse `json:"office"`
}

// AttendanceSummary counts the days of the current week by outcome.
type AttendanceSummary struct {
	Present  int `json:"present"`
	HalfDay  int `json:"half_day"`
	Absent   int `json:"absent"`
	Leave    int `json:"leave"`
	WeekOff  int `json:"week_off"`
	Upcoming int `json:"upcoming"`
}

type DailyHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type ProfileResponse struct {
	Employee          EmployeeResponse  `json:"employee"`
	WeekStart         string            `json:"week_start"`
	WeekEnd           string            `json:"week_end"`
	AttendanceSummary AttendanceSummary `json:"attendance_summary"`
	WeeklyHours       []DailyHours      `json:"weekly_hours"`
	TodayHours        float64           `json:"today_hours"`
}
