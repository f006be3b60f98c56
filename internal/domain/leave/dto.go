package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	DateFrom    string `json:"date_from"` // YYYY-MM-DD
	DateTo      string `json:"date_to"`   // YYYY-MM-DD
	Reason      string `json:"reason"`

	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	from, fromOK := validator.IsValidDate(r.DateFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(r.DateTo)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK {
		if to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must not be before date_from",
			})
		} else if to.Sub(from) > 365*24*time.Hour {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "a single leave request cannot exceed one year",
			})
		}
		r.StartDate, r.EndDate = from, to
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveFilter struct {
	Search *string `json:"search,omitempty"`
	Status *string `json:"status,omitempty"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

func (f *LeaveFilter) Validate() error {
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
	if f.Status != nil && !validator.IsInSlice(*f.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: waiting_approval, approved, rejected, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveTypeResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code,omitempty"`
}

type LeaveRequestResponse struct {
	ID          string `json:"id"`
	LeaveTypeID string `json:"leave_type_id"`
	LeaveType   string `json:"leave_type"`
	JobTitle    string `json:"job_title"`
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
	Period      string `json:"period"`
	TotalDays   int    `json:"total_days"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

type ListLeaveResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
	ApprovedCount int64                  `json:"approved_count"`
	PendingCount  int64                  `json:"pending_count"`
	Leaves        []LeaveRequestResponse `json:"leaves"`
}

// StatusCounts are aggregated over the employee's requests regardless of paging.
type StatusCounts struct {
	Approved int64
	Pending  int64
}
