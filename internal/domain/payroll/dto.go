package payroll

import (
	"strings"

	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
)

type PayslipFilter struct {
	Search    *string `json:"search,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
	SortOrder string  `json:"sort_order"` // by date_from
}

func (f *PayslipFilter) Validate() error {
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
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}
	f.SortOrder = strings.ToLower(f.SortOrder)
	if !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be one of: asc, desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayslipSummaryResponse struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	State    string `json:"state"`
	Net      string `json:"net"`
}

type ListPayslipResponse struct {
	TotalCount int64                    `json:"total_count"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	TotalPages int                      `json:"total_pages"`
	Payslips   []PayslipSummaryResponse `json:"payslips"`
}

type PayslipLineResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Total    string `json:"total"`
}

type PayslipDetailResponse struct {
	ID         string                `json:"id"`
	Number     string                `json:"number"`
	Name       string                `json:"name"`
	DateFrom   string                `json:"date_from"`
	DateTo     string                `json:"date_to"`
	State      string                `json:"state"`
	Company    string                `json:"company"`
	Location   string                `json:"location"`
	NetTotal   string                `json:"net_total"`
	GrandTotal string                `json:"grand_total"`
	Lines      []PayslipLineResponse `json:"lines"`
}

type DailyHours struct {
	Day   string  `json:"day"`
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type WorkingHours struct {
	TodayHours  float64      `json:"today_hours"`
	WeeklyChart []DailyHours `json:"weekly_chart"`
}

type PayslipDashboardResponse struct {
	NextPayslips []PayslipSummaryResponse `json:"next_payslips"`
	YearToDate   YearToDateTotals         `json:"year_to_date"`
	WorkingHours WorkingHours             `json:"working_hours"`
}

type YearToDateTotals struct {
	Year     int    `json:"year"`
	Payslips int    `json:"payslips"`
	Net      string `json:"net"`
}
