package expense

import (
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	Reason      string          `json:"reason"`
	Description *string         `json:"description,omitempty"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount"`

	ExpenseDate time.Time `json:"-"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if len(r.Reason) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 255 characters",
		})
	}

	if d, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.ExpenseDate = d
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than 0",
		})
	} else if !r.Amount.Equal(r.Amount.Round(2)) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must have at most 2 decimal places",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExpenseFilter struct {
	State *string `json:"state,omitempty"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

func (f *ExpenseFilter) Validate() error {
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
	validStates := []string{
		string(ExpenseStateDraft), string(ExpenseStateReported), string(ExpenseStateApproved),
		string(ExpenseStateDone), string(ExpenseStateRefused),
	}
	if f.State != nil && !validator.IsInSlice(*f.State, validStates) {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of: draft, reported, approved, done, refused",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Amount      string  `json:"amount"`
	State       string  `json:"state"`
	Date        string  `json:"date"`
}

type ListExpenseResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Expenses   []ExpenseResponse `json:"expenses"`
}
