package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayslipState enum
type PayslipState string

const (
	PayslipStateDraft     PayslipState = "draft"
	PayslipStateVerify    PayslipState = "verify"
	PayslipStateDone      PayslipState = "done"
	PayslipStateCancelled PayslipState = "cancel"
)

// NetLineCode identifies the payslip line holding the take-home amount.
const NetLineCode = "NET"

type Payslip struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Number     string
	Name       string
	DateFrom   time.Time
	DateTo     time.Time
	State      PayslipState
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	Lines       []PayslipLine
	NetTotal    decimal.Decimal
	CompanyName *string
	CompanyCity *string
}

type PayslipLine struct {
	ID        string
	PayslipID string
	Sequence  int
	Code      string
	Name      string
	Category  string
	Total     decimal.Decimal
}

// Net returns the total of the NET line, or zero when the payslip has none.
func (p Payslip) Net() decimal.Decimal {
	for _, l := range p.Lines {
		if l.Code == NetLineCode {
			return l.Total
		}
	}
	return p.NetTotal
}

// GrandTotal sums every line, matching the detail view of the payslip.
func (p Payslip) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.Lines {
		total = total.Add(l.Total)
	}
	return total
}
