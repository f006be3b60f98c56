package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/event"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

// GetUpcoming implements event.EventRepository.
func (r *eventRepositoryImpl) GetUpcoming(ctx context.Context, companyID string, filter event.EventFilter) ([]event.Event, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "(company_id = $1 OR company_id IS NULL) AND date_begin >= $2"
	args := []interface{}{companyID, filter.From}
	argIdx := 3

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (name ILIKE $%d OR location ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM events WHERE "+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, company_id, name, date_begin, date_end, location,
			   seats_max, seats_taken, description, created_at, updated_at
		FROM events
		WHERE %s
		ORDER BY date_begin ASC, id
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var e event.Event
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.Name, &e.DateBegin, &e.DateEnd, &e.Location,
			&e.SeatsMax, &e.SeatsTaken, &e.Description, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, total, nil
}
