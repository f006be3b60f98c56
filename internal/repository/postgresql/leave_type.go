package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/leave"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// ListAvailable implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) ListAvailable(ctx context.Context, employeeID string, companyID string) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lt.id, lt.company_id, lt.name, lt.code, lt.requires_allocation, lt.is_active,
			   lt.created_at, lt.updated_at
		FROM leave_types lt
		WHERE lt.company_id = $2
		  AND lt.is_active = true
		  AND (
			lt.requires_allocation = false
			OR EXISTS (
				SELECT 1 FROM leave_allocations la
				WHERE la.leave_type_id = lt.id
				  AND la.employee_id = $1
				  AND la.state = 'approved'
			)
		  )
		ORDER BY lt.name ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(
			&lt.ID, &lt.CompanyID, &lt.Name, &lt.Code, &lt.RequiresAllocation, &lt.IsActive,
			&lt.CreatedAt, &lt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave types: %w", err)
	}

	return types, nil
}
