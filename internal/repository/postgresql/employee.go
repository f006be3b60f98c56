package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, user_id, company_id, employee_code, full_name, job_title, work_email,
	phone_number, avatar_url, office_latitude, office_longitude, allowed_radius_m,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var found employee.Employee
	err := row.Scan(
		&found.ID, &found.UserID, &found.CompanyID, &found.EmployeeCode, &found.FullName,
		&found.JobTitle, &found.WorkEmail, &found.PhoneNumber, &found.AvatarURL,
		&found.OfficeLatitude, &found.OfficeLongitude, &found.AllowedRadiusM,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		// A malformed id cannot match any row.
		if errors.Is(err, pgx.ErrNoRows) || isPgCode(err, pgInvalidTextRepresentation) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to scan employee: %w", err)
	}
	return found, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByUserID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE user_id = $1 AND deleted_at IS NULL
	`
	return scanEmployee(q.QueryRow(ctx, query, userID))
}

// UpdateOffice implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateOffice(ctx context.Context, id string, companyID string, req employee.UpdateOfficeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET office_latitude = $3,
			office_longitude = $4,
			allowed_radius_m = COALESCE($5, allowed_radius_m),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query, id, companyID, req.OfficeLatitude, req.OfficeLongitude, req.AllowedRadiusM))
}
