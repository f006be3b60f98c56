package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/leave"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/cmlabs-hris/hris-mobile-api/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	f := seedEmployee(t, ctx, "Budi@Example.com")
	repo := postgresql.NewUserRepository(db)

	u, err := repo.GetByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, f.UserID, u.ID)
	assert.Equal(t, user.RoleEmployee, u.Role)
	assert.True(t, u.IsActive)
	require.NotNil(t, u.EmployeeID)
	assert.Equal(t, f.EmployeeID, *u.EmployeeID)

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRefreshTokenRepository(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	f := seedEmployee(t, ctx, "budi@example.com")
	repo := postgresql.NewRefreshTokenRepository(db)

	require.NoError(t, repo.CreateRefreshToken(ctx, f.UserID, "token-a", time.Now().Add(time.Hour).Unix()))
	require.NoError(t, repo.CreateRefreshToken(ctx, f.UserID, "token-expired", time.Now().Add(-time.Hour).Unix()))

	userID, revoked, err := repo.IsRefreshTokenRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, f.UserID, userID)

	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "token-expired")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "never-issued")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, repo.RevokeRefreshToken(ctx, "token-a"))
	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestEmployeeRepository_UpdateOffice(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	f := seedEmployee(t, ctx, "budi@example.com")
	other := seedEmployee(t, ctx, "sari@example.com")
	repo := postgresql.NewEmployeeRepository(db)

	radius := 250
	updated, err := repo.UpdateOffice(ctx, f.EmployeeID, f.CompanyID, employee.UpdateOfficeRequest{
		OfficeLatitude: -6.1754, OfficeLongitude: 106.8272, AllowedRadiusM: &radius,
	})
	require.NoError(t, err)
	assert.Equal(t, -6.1754, *updated.OfficeLatitude)
	assert.Equal(t, 250, updated.AllowedRadiusM)

	// Radius is kept when omitted.
	updated, err = repo.UpdateOffice(ctx, f.EmployeeID, f.CompanyID, employee.UpdateOfficeRequest{OfficeLatitude: 0, OfficeLongitude: 0})
	require.NoError(t, err)
	assert.Equal(t, 250, updated.AllowedRadiusM)
	assert.True(t, updated.HasOffice())

	// Another company's employee is invisible.
	_, err = repo.UpdateOffice(ctx, f.EmployeeID, other.CompanyID, employee.UpdateOfficeRequest{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	byUser, err := repo.GetByUserID(ctx, f.UserID)
	require.NoError(t, err)
	assert.Equal(t, f.EmployeeID, byUser.ID)
}

func TestLeaveRepositories(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	f := seedEmployee(t, ctx, "budi@example.com")
	types := postgresql.NewLeaveTypeRepository(db)
	requests := postgresql.NewLeaveRequestRepository(db)

	var openTypeID, allocatedTypeID string
	require.NoError(t, db.QueryRow(ctx, `
		INSERT INTO leave_types (company_id, name, requires_allocation) VALUES ($1, 'Sick Leave', false) RETURNING id
	`, f.CompanyID).Scan(&openTypeID))
	require.NoError(t, db.QueryRow(ctx, `
		INSERT INTO leave_types (company_id, name, requires_allocation) VALUES ($1, 'Annual Leave', true) RETURNING id
	`, f.CompanyID).Scan(&allocatedTypeID))

	available, err := types.ListAvailable(ctx, f.EmployeeID, f.CompanyID)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, openTypeID, available[0].ID)

	_, err = db.Exec(ctx, `INSERT INTO leave_allocations (employee_id, leave_type_id, days) VALUES ($1, $2, 12)`, f.EmployeeID, allocatedTypeID)
	require.NoError(t, err)
	available, err = types.ListAvailable(ctx, f.EmployeeID, f.CompanyID)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	day := func(d int) time.Time { return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC) }
	created, err := requests.Create(ctx, leave.LeaveRequest{
		EmployeeID:  f.EmployeeID,
		LeaveTypeID: openTypeID,
		StartDate:   day(19),
		EndDate:     day(21),
		TotalDays:   3,
		Reason:      "Flu",
		Status:      leave.LeaveRequestStatusWaitingApproval,
		SubmittedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	overlap, err := requests.HasOverlap(ctx, f.EmployeeID, day(21), day(22))
	require.NoError(t, err)
	assert.True(t, overlap)
	overlap, err = requests.HasOverlap(ctx, f.EmployeeID, day(22), day(23))
	require.NoError(t, err)
	assert.False(t, overlap)

	approved, err := requests.ListApprovedBetween(ctx, f.EmployeeID, day(19), day(25))
	require.NoError(t, err)
	assert.Empty(t, approved)

	_, err = db.Exec(ctx, `UPDATE leave_requests SET status = 'approved' WHERE id = $1`, created.ID)
	require.NoError(t, err)
	approved, err = requests.ListApprovedBetween(ctx, f.EmployeeID, day(19), day(25))
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.True(t, approved[0].Covers(day(20)))

	list, total, counts, err := requests.GetMyRequests(ctx, f.EmployeeID, leave.LeaveFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.EqualValues(t, 1, counts.Approved)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].LeaveTypeName)
	assert.Equal(t, "Sick Leave", *list[0].LeaveTypeName)
}

func TestPayrollRepository_GetByID(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	f := seedEmployee(t, ctx, "budi@example.com")
	repo := postgresql.NewPayrollRepository(db)

	var payslipID string
	require.NoError(t, db.QueryRow(ctx, `
		INSERT INTO payslips (employee_id, company_id, number, name, date_from, date_to, state)
		VALUES ($1, $2, 'SLIP/001', 'Salary Slip October', '2026-10-01', '2026-10-31', 'done')
		RETURNING id
	`, f.EmployeeID, f.CompanyID).Scan(&payslipID))
	_, err := db.Exec(ctx, `
		INSERT INTO payslip_lines (payslip_id, sequence, code, name, category, total) VALUES
			($1, 1, 'BASIC', 'Basic Salary', 'Basic', 5000000),
			($1, 2, 'TAX', 'Income Tax', 'Deduction', -250000.50),
			($1, 3, 'NET', 'Net Salary', 'Net', 4749999.50)
	`, payslipID)
	require.NoError(t, err)

	p, err := repo.GetByID(ctx, payslipID)
	require.NoError(t, err)
	assert.Equal(t, f.CompanyID, p.CompanyID)
	require.Len(t, p.Lines, 3)
	assert.Equal(t, "4749999.5", p.Net().String())
	require.NotNil(t, p.CompanyCity)
	assert.Equal(t, "Jakarta", *p.CompanyCity)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)

	done, err := repo.ListDoneBetween(ctx, f.EmployeeID, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "4749999.5", done[0].Net().String())
}
