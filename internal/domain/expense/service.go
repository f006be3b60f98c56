package expense

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
)

type ExpenseService interface {
	CreateExpense(ctx context.Context, actor employee.Employee, req CreateExpenseRequest) (ExpenseResponse, error)
	ListMyExpenses(ctx context.Context, actor employee.Employee, filter ExpenseFilter) (ListExpenseResponse, error)
}
