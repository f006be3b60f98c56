package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayslipRepository {
	return &payrollRepository{db: db}
}

// net_total is the NET line of the payslip, zero when absent.
const payslipSelect = `
	SELECT p.id, p.employee_id, p.company_id, p.number, p.name, p.date_from, p.date_to, p.state,
		   p.created_at, p.updated_at,
		   COALESCE((SELECT pl.total FROM payslip_lines pl
					 WHERE pl.payslip_id = p.id AND pl.code = 'NET'
					 ORDER BY pl.sequence LIMIT 1), 0) AS net_total,
		   c.name, c.city
	FROM payslips p
	LEFT JOIN companies c ON c.id = p.company_id
`

func scanPayslipRow(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Number, &p.Name, &p.DateFrom, &p.DateTo, &p.State,
		&p.CreatedAt, &p.UpdatedAt, &p.NetTotal, &p.CompanyName, &p.CompanyCity,
	)
	return p, err
}

func scanPayslips(rows pgx.Rows) ([]payroll.Payslip, error) {
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslipRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslips: %w", err)
	}
	return payslips, nil
}

// GetMyPayslips implements payroll.PayslipRepository.
func (r *payrollRepository) GetMyPayslips(ctx context.Context, employeeID string, filter payroll.PayslipFilter) ([]payroll.Payslip, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "p.employee_id = $1 AND p.state <> 'cancel'"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.number ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM payslips p WHERE "+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	query := payslipSelect + fmt.Sprintf(`
		WHERE %s
		ORDER BY p.date_from %s, p.created_at %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, sortOrder, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payslips: %w", err)
	}
	payslips, err := scanPayslips(rows)
	if err != nil {
		return nil, 0, err
	}

	return payslips, total, nil
}

// GetByID implements payroll.PayslipRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayslipRow(q.QueryRow(ctx, payslipSelect+" WHERE p.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isPgCode(err, pgInvalidTextRepresentation) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, payslip_id, sequence, code, name, category, total
		FROM payslip_lines
		WHERE payslip_id = $1
		ORDER BY sequence ASC, code ASC
	`, id)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to query payslip lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l payroll.PayslipLine
		if err := rows.Scan(&l.ID, &l.PayslipID, &l.Sequence, &l.Code, &l.Name, &l.Category, &l.Total); err != nil {
			return payroll.Payslip{}, fmt.Errorf("failed to scan payslip line: %w", err)
		}
		p.Lines = append(p.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to iterate payslip lines: %w", err)
	}

	return p, nil
}

// GetUpcoming implements payroll.PayslipRepository.
func (r *payrollRepository) GetUpcoming(ctx context.Context, employeeID string, day time.Time, limit int) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := payslipSelect + `
		WHERE p.employee_id = $1
		  AND p.date_to >= $2
		  AND p.state <> 'cancel'
		ORDER BY p.date_to ASC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, employeeID, day, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming payslips: %w", err)
	}
	return scanPayslips(rows)
}

// ListDoneBetween implements payroll.PayslipRepository.
func (r *payrollRepository) ListDoneBetween(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := payslipSelect + `
		WHERE p.employee_id = $1
		  AND p.state = 'done'
		  AND p.date_to >= $2
		  AND p.date_to < $3
		ORDER BY p.date_to ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query done payslips: %w", err)
	}
	return scanPayslips(rows)
}
