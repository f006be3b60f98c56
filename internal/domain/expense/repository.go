package expense

import "context"

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetMyExpenses(ctx context.Context, employeeID string, filter ExpenseFilter) ([]Expense, int64, error)
}
