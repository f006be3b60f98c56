package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	id, employee_id, check_in, check_out, is_break,
	in_latitude, in_longitude, out_latitude, out_longitude,
	created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut, &att.IsBreak,
		&att.InLatitude, &att.InLongitude, &att.OutLatitude, &att.OutLongitude,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// FindOpenSession implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindOpenSession(ctx context.Context, employeeID string, isBreak bool) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND is_break = $2
		  AND check_out IS NULL
		ORDER BY check_in DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, isBreak))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, check_in, is_break, in_latitude, in_longitude
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.CheckIn,
		newAttendance.IsBreak,
		newAttendance.InLatitude,
		newAttendance.InLongitude,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		// uq_attendances_open_session rejects a second open session of the same kind.
		if isPgCode(err, pgUniqueViolation, pgSerializationFailure, pgDeadlockDetected) {
			return attendance.Attendance{}, attendance.ErrConcurrencyConflict
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// Close implements attendance.AttendanceRepository.
func (a *attendanceRepository) Close(ctx context.Context, id string, checkOut time.Time, lat, lon float64) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $2,
			out_latitude = $3,
			out_longitude = $4,
			updated_at = NOW()
		WHERE id = $1
		  AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, checkOut, lat, lon)
	if err != nil {
		if isPgCode(err, pgSerializationFailure, pgDeadlockDetected) {
			return attendance.ErrConcurrencyConflict
		}
		return fmt.Errorf("failed to close attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrConcurrencyConflict
	}

	return nil
}

// ListBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND check_in >= $2
		  AND check_in < $3
		ORDER BY check_in ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}

// GetMyAttendance implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.CheckInFrom != nil {
		baseWhere += fmt.Sprintf(" AND check_in >= $%d", argIdx)
		args = append(args, *filter.CheckInFrom)
		argIdx++
	}
	if filter.CheckInTo != nil {
		baseWhere += fmt.Sprintf(" AND check_in < $%d", argIdx)
		args = append(args, *filter.CheckInTo)
		argIdx++
	}

	if filter.Kind != nil && *filter.Kind != "" {
		baseWhere += fmt.Sprintf(" AND is_break = $%d", argIdx)
		args = append(args, *filter.Kind == attendance.KindBreak)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendances WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`SELECT %s
		FROM attendances
		WHERE %s
		ORDER BY check_in %s, created_at %s
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, sortOrder, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, total, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
