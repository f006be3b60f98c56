package payroll

import (
	"context"
	"time"
)

type PayslipRepository interface {
	// GetMyPayslips returns a page of payslips with NetTotal populated.
	GetMyPayslips(ctx context.Context, employeeID string, filter PayslipFilter) ([]Payslip, int64, error)
	// GetByID returns a payslip with its lines and company fields.
	GetByID(ctx context.Context, id string) (Payslip, error)
	// GetUpcoming returns payslips whose period ends on or after day, earliest first.
	GetUpcoming(ctx context.Context, employeeID string, day time.Time, limit int) ([]Payslip, error)
	// ListDoneBetween returns done payslips whose date_to is inside [from, to).
	ListDoneBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Payslip, error)
}
