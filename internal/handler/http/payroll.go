package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	ListMyPayslips(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// ListMyPayslips implements PayrollHandler.
func (h *payrollHandlerImpl) ListMyPayslips(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	filter := payroll.PayslipFilter{
		Search:    queryString(r, "search"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	result, err := h.payrollService.ListMyPayslips(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), actor, claims.Role, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDashboard implements PayrollHandler.
func (h *payrollHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetDashboard(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
