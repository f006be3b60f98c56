package announcement

import "github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"

type AnnouncementFilter struct {
	Search *string `json:"search,omitempty"` // matches title or body
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

func (f *AnnouncementFilter) Validate() error {
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
		f.Limit = 10
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AnnouncementResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Body      string  `json:"body"`
	IsGeneral bool    `json:"is_general"`
	Company   string  `json:"company"`
}

type ListAnnouncementResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
	Announcements []AnnouncementResponse `json:"announcements"`
}
