package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/expense"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
)

type ExpenseHandler interface {
	ListMyExpenses(w http.ResponseWriter, r *http.Request)
	CreateExpense(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &expenseHandlerImpl{
		expenseService: expenseService,
	}
}

// ListMyExpenses implements ExpenseHandler.
func (h *expenseHandlerImpl) ListMyExpenses(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	filter := expense.ExpenseFilter{
		State: queryString(r, "state"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}

	result, err := h.expenseService.ListMyExpenses(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateExpense implements ExpenseHandler.
func (h *expenseHandlerImpl) CreateExpense(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req expense.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.expenseService.CreateExpense(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense created", created)
}
