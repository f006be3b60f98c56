package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/leave"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.total_days,
		   lr.reason, lr.status, lr.submitted_at, lr.created_at, lr.updated_at,
		   lt.name, e.full_name, e.job_title
	FROM leave_requests lr
	JOIN leave_types lt ON lt.id = lr.leave_type_id
	JOIN employees e ON e.id = lr.employee_id
`

func scanLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate, &lr.TotalDays,
			&lr.Reason, &lr.Status, &lr.SubmittedAt, &lr.CreatedAt, &lr.UpdatedAt,
			&lr.LeaveTypeName, &lr.EmployeeName, &lr.JobTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type_id, start_date, end_date, total_days, reason, status, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.LeaveTypeID,
		req.StartDate,
		req.EndDate,
		req.TotalDays,
		req.Reason,
		req.Status,
		req.SubmittedAt,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetMyRequests implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetMyRequests(ctx context.Context, employeeID string, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, leave.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	var counts leave.StatusCounts
	countsQuery := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'waiting_approval')
		FROM leave_requests
		WHERE employee_id = $1
	`
	if err := q.QueryRow(ctx, countsQuery, employeeID).Scan(&counts.Approved, &counts.Pending); err != nil {
		return nil, 0, leave.StatusCounts{}, fmt.Errorf("failed to count leave requests by status: %w", err)
	}

	baseWhere := "lr.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (lt.name ILIKE $%d OR lr.reason ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE ` + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, leave.StatusCounts{}, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := leaveRequestSelect + fmt.Sprintf(`
		WHERE %s
		ORDER BY lr.start_date DESC, lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, leave.StatusCounts{}, fmt.Errorf("failed to query leave requests: %w", err)
	}
	requests, err := scanLeaveRequests(rows)
	if err != nil {
		return nil, 0, leave.StatusCounts{}, err
	}

	return requests, total, counts, nil
}

// HasOverlap implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('waiting_approval', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	return exists, nil
}

// ListApprovedBetween implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedBetween(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + `
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leave: %w", err)
	}
	return scanLeaveRequests(rows)
}
