package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/announcement"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

// GetVisible implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) GetVisible(ctx context.Context, employeeID string, companyID string, filter announcement.AnnouncementFilter) ([]announcement.Announcement, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := `a.company_id = $1 AND a.state = $2 AND (
		a.is_general OR EXISTS (
			SELECT 1 FROM announcement_employees ae
			WHERE ae.announcement_id = a.id AND ae.employee_id = $3
		)
	)`
	args := []interface{}{companyID, announcement.AnnouncementStateApproved, employeeID}
	argIdx := 4

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (a.title ILIKE $%d OR a.body ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM announcements a WHERE "+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.company_id, a.title, a.body, a.date_start, a.date_end,
			   a.is_general, a.state, a.created_at, a.updated_at, c.name
		FROM announcements a
		LEFT JOIN companies c ON c.id = a.company_id
		WHERE %s
		ORDER BY a.date_start DESC NULLS LAST, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	var items []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.Title, &a.Body, &a.DateStart, &a.DateEnd,
			&a.IsGeneral, &a.State, &a.CreatedAt, &a.UpdatedAt, &a.CompanyName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan announcement: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate announcements: %w", err)
	}

	return items, total, nil
}
