package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateOffice(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// GetProfile implements EmployeeHandler.
func (h *employeeHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.employeeService.GetProfile(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// UpdateOffice implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateOffice(w http.ResponseWriter, r *http.Request) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.UpdateOfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	caller := employee.Caller{
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Role:      claims.Role,
	}

	updated, err := h.employeeService.UpdateOfficeLocation(r.Context(), caller, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office location updated", updated)
}
