package leave

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/leave"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
)

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	now func() time.Time
}

func NewLeaveService(tx database.Transactor, leaveTypeRepository leave.LeaveTypeRepository, leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		now:                    time.Now,
	}
}

// ListLeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context, actor employee.Employee) ([]leave.LeaveTypeResponse, error) {
	types, err := s.LeaveTypeRepository.ListAvailable(ctx, actor.ID, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, leave.LeaveTypeResponse{
			ID:   lt.ID,
			Name: lt.Name,
			Code: lt.Code,
		})
	}
	return responses, nil
}

// ListMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMyLeaves(ctx context.Context, actor employee.Employee, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, counts, err := s.LeaveRequestRepository.GetMyRequests(ctx, actor.ID, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to get leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, mapLeaveRequestToResponse(r))
	}

	return leave.ListLeaveResponse{
		TotalCount:    total,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    int(math.Ceil(float64(total) / float64(filter.Limit))),
		ApprovedCount: counts.Approved,
		PendingCount:  counts.Pending,
		Leaves:        responses,
	}, nil
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, actor employee.Employee, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var created leave.LeaveRequest
	err := s.tx.WithinLockedTransaction(ctx, "leave:"+actor.ID, func(txCtx context.Context) error {
		types, err := s.LeaveTypeRepository.ListAvailable(txCtx, actor.ID, actor.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to list leave types: %w", err)
		}
		var leaveType *leave.LeaveType
		for i := range types {
			if types[i].ID == req.LeaveTypeID {
				leaveType = &types[i]
				break
			}
		}
		if leaveType == nil {
			return leave.ErrLeaveTypeNotFound
		}

		overlap, err := s.LeaveRequestRepository.HasOverlap(txCtx, actor.ID, req.StartDate, req.EndDate)
		if err != nil {
			return fmt.Errorf("failed to check leave overlap: %w", err)
		}
		if overlap {
			return leave.ErrLeaveOverlap
		}

		created, err = s.LeaveRequestRepository.Create(txCtx, leave.LeaveRequest{
			EmployeeID:  actor.ID,
			LeaveTypeID: leaveType.ID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			TotalDays:   int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1,
			Reason:      req.Reason,
			Status:      leave.LeaveRequestStatusWaitingApproval,
			SubmittedAt: s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		created.LeaveTypeName = &leaveType.Name
		created.JobTitle = actor.JobTitle
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request submitted",
		"employee_id", actor.ID,
		"leave_request_id", created.ID,
		"total_days", created.TotalDays,
	)

	return mapLeaveRequestToResponse(created), nil
}

func mapLeaveRequestToResponse(r leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:          r.ID,
		LeaveTypeID: r.LeaveTypeID,
		DateFrom:    r.StartDate.Format("2006-01-02"),
		DateTo:      r.EndDate.Format("2006-01-02"),
		Period:      r.StartDate.Format("02 Jan 2006") + " - " + r.EndDate.Format("02 Jan 2006"),
		TotalDays:   r.TotalDays,
		Reason:      r.Reason,
		Status:      string(r.Status),
		SubmittedAt: r.SubmittedAt.UTC().Format(time.RFC3339),
	}
	if r.LeaveTypeName != nil {
		resp.LeaveType = *r.LeaveTypeName
	}
	if r.JobTitle != nil {
		resp.JobTitle = *r.JobTitle
	}
	return resp
}
