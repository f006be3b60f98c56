package announcement

import "context"

type AnnouncementRepository interface {
	// GetVisible returns a page of approved announcements of the company that are
	// general or addressed to the employee, latest start date first.
	GetVisible(ctx context.Context, employeeID string, companyID string, filter AnnouncementFilter) ([]Announcement, int64, error)
}
