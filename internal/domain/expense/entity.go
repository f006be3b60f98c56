package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseState string

const (
	ExpenseStateDraft    ExpenseState = "draft"
	ExpenseStateReported ExpenseState = "reported"
	ExpenseStateApproved ExpenseState = "approved"
	ExpenseStateDone     ExpenseState = "done"
	ExpenseStateRefused  ExpenseState = "refused"
)

type PaymentMode string

const (
	PaymentModeOwnAccount     PaymentMode = "own_account"
	PaymentModeCompanyAccount PaymentMode = "company_account"
)

type Expense struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	Name        string
	Description *string
	ExpenseDate time.Time
	TotalAmount decimal.Decimal
	Quantity    decimal.Decimal
	PaymentMode PaymentMode
	State       ExpenseState
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
