package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/leave"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
)

type LeaveHandler interface {
	ListMyLeaves(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	CreateLeave(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// ListMyLeaves implements LeaveHandler.
func (h *leaveHandlerImpl) ListMyLeaves(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	filter := leave.LeaveFilter{
		Search: queryString(r, "search"),
		Status: queryString(r, "status"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}

	result, err := h.leaveService.ListMyLeaves(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListLeaveTypes implements LeaveHandler.
func (h *leaveHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	types, err := h.leaveService.ListLeaveTypes(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// CreateLeave implements LeaveHandler.
func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateLeave(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}
