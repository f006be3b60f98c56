package event

import (
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
)

type EventFilter struct {
	Search *string `json:"search,omitempty"` // matches name or location
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`

	// Events starting before this instant are excluded.
	From time.Time `json:"-"`
}

func (f *EventFilter) Validate() error {
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

type EventResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	StartDatetime  string `json:"start_datetime"`
	EndDatetime    string `json:"end_datetime"`
	Location       string `json:"location"`
	SeatsMax       int    `json:"seats_max"`
	SeatsAvailable int    `json:"seats_available"`
	Description    string `json:"description"`
}

type ListEventResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Events     []EventResponse `json:"events"`
}
