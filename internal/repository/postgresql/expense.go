package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/expense"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (
			employee_id, company_id, name, description, expense_date,
			total_amount, quantity, payment_mode, state
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.EmployeeID, e.CompanyID, e.Name, e.Description, e.ExpenseDate,
		e.TotalAmount, e.Quantity, e.PaymentMode, e.State,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return e, nil
}

// GetMyExpenses implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) GetMyExpenses(ctx context.Context, employeeID string, filter expense.ExpenseFilter) ([]expense.Expense, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.State != nil && *filter.State != "" {
		baseWhere += fmt.Sprintf(" AND state = $%d", argIdx)
		args = append(args, *filter.State)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM expenses WHERE "+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, company_id, name, description, expense_date,
			   total_amount, quantity, payment_mode, state, created_at, updated_at
		FROM expenses
		WHERE %s
		ORDER BY expense_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.CompanyID, &e.Name, &e.Description, &e.ExpenseDate,
			&e.TotalAmount, &e.Quantity, &e.PaymentMode, &e.State, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, total, nil
}
