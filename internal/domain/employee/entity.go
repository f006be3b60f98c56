package employee

import (
	"time"
)

// DefaultAllowedRadiusM is used when an employee has no positive radius configured.
const DefaultAllowedRadiusM = 100

type Employee struct {
	ID              string
	UserID          *string
	CompanyID       string
	EmployeeCode    string
	FullName        string
	JobTitle        *string
	WorkEmail       *string
	PhoneNumber     *string
	AvatarURL       *string
	OfficeLatitude  *float64
	OfficeLongitude *float64
	AllowedRadiusM  int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasOffice reports whether both office coordinates are set.
func (e Employee) HasOffice() bool {
	return e.OfficeLatitude != nil && e.OfficeLongitude != nil
}

// RadiusMeters returns the allowed check-in radius, falling back to the default.
func (e Employee) RadiusMeters() int {
	if e.AllowedRadiusM <= 0 {
		return DefaultAllowedRadiusM
	}
	return e.AllowedRadiusM
}
