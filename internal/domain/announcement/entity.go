package announcement

import "time"

type AnnouncementState string

const (
	AnnouncementStateDraft    AnnouncementState = "draft"
	AnnouncementStateApproved AnnouncementState = "approved"
	AnnouncementStateRejected AnnouncementState = "rejected"
	AnnouncementStateExpired  AnnouncementState = "expired"
)

// Announcement is either general (every employee of the company sees it) or
// addressed to a list of employees.
type Announcement struct {
	ID        string
	CompanyID string
	Title     string
	Body      string
	DateStart *time.Time
	DateEnd   *time.Time
	IsGeneral bool
	State     AnnouncementState
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	CompanyName *string
}
