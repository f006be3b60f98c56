package expense

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/expense"
	"github.com/shopspring/decimal"
)

type ExpenseServiceImpl struct {
	expense.ExpenseRepository
}

func NewExpenseService(expenseRepository expense.ExpenseRepository) expense.ExpenseService {
	return &ExpenseServiceImpl{ExpenseRepository: expenseRepository}
}

// CreateExpense implements expense.ExpenseService.
func (s *ExpenseServiceImpl) CreateExpense(ctx context.Context, actor employee.Employee, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	created, err := s.ExpenseRepository.Create(ctx, expense.Expense{
		EmployeeID:  actor.ID,
		CompanyID:   actor.CompanyID,
		Name:        req.Reason,
		Description: req.Description,
		ExpenseDate: req.ExpenseDate,
		TotalAmount: req.Amount,
		Quantity:    decimal.NewFromInt(1),
		PaymentMode: expense.PaymentModeOwnAccount,
		State:       expense.ExpenseStateDraft,
	})
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("expense created", "employee_id", actor.ID, "expense_id", created.ID, "amount", created.TotalAmount.String())

	return mapExpenseToResponse(created), nil
}

// ListMyExpenses implements expense.ExpenseService.
func (s *ExpenseServiceImpl) ListMyExpenses(ctx context.Context, actor employee.Employee, filter expense.ExpenseFilter) (expense.ListExpenseResponse, error) {
	if err := filter.Validate(); err != nil {
		return expense.ListExpenseResponse{}, err
	}

	expenses, total, err := s.ExpenseRepository.GetMyExpenses(ctx, actor.ID, filter)
	if err != nil {
		return expense.ListExpenseResponse{}, fmt.Errorf("failed to get expenses: %w", err)
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, mapExpenseToResponse(e))
	}

	return expense.ListExpenseResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Expenses:   responses,
	}, nil
}

func mapExpenseToResponse(e expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Amount:      e.TotalAmount.StringFixed(2),
		State:       string(e.State),
		Date:        e.ExpenseDate.Format("2006-01-02"),
	}
}
