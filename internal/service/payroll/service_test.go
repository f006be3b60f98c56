package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayslipRepo struct {
	payslips []payroll.Payslip
}

func (f *fakePayslipRepo) GetMyPayslips(_ context.Context, employeeID string, _ payroll.PayslipFilter) ([]payroll.Payslip, int64, error) {
	var out []payroll.Payslip
	for _, p := range f.payslips {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePayslipRepo) GetByID(_ context.Context, id string) (payroll.Payslip, error) {
	for _, p := range f.payslips {
		if p.ID == id {
			return p, nil
		}
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

func (f *fakePayslipRepo) GetUpcoming(_ context.Context, employeeID string, day time.Time, limit int) ([]payroll.Payslip, error) {
	var out []payroll.Payslip
	for _, p := range f.payslips {
		if p.EmployeeID == employeeID && !p.DateTo.Before(day) && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayslipRepo) ListDoneBetween(_ context.Context, employeeID string, from, to time.Time) ([]payroll.Payslip, error) {
	var out []payroll.Payslip
	for _, p := range f.payslips {
		if p.EmployeeID == employeeID && p.State == payroll.PayslipStateDone && !p.DateTo.Before(from) && p.DateTo.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	sessions []attendance.Attendance
}

func (f *fakeAttendanceRepo) ListBetween(_ context.Context, _ string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, s := range f.sessions {
		if !s.CheckIn.Before(from) && s.CheckIn.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

var wib = time.FixedZone("WIB", 7*60*60)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func payslip(id, employeeID, companyID string, from, to time.Time, state payroll.PayslipState, net string) payroll.Payslip {
	return payroll.Payslip{
		ID:         id,
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Number:     "SLIP/" + id,
		Name:       "Salary Slip " + id,
		DateFrom:   from,
		DateTo:     to,
		State:      state,
		Lines: []payroll.PayslipLine{
			{Code: "BASIC", Name: "Basic Salary", Category: "Basic", Total: decimal.RequireFromString("5000000")},
			{Code: "TAX", Name: "Income Tax", Category: "Deduction", Total: decimal.RequireFromString("-250000.50")},
			{Code: payroll.NetLineCode, Name: "Net Salary", Category: "Net", Total: decimal.RequireFromString(net)},
		},
	}
}

func setupPayrollService(now time.Time, sessions []attendance.Attendance) *PayrollServiceImpl {
	repo := &fakePayslipRepo{payslips: []payroll.Payslip{
		payslip("p-aug", "emp-1", "company-1", date(2026, 8, 1), date(2026, 8, 31), payroll.PayslipStateDone, "4749999.50"),
		payslip("p-sep", "emp-1", "company-1", date(2026, 9, 1), date(2026, 9, 30), payroll.PayslipStateDone, "4749999.50"),
		payslip("p-oct", "emp-1", "company-1", date(2026, 10, 1), date(2026, 10, 31), payroll.PayslipStateDraft, "4800000"),
		payslip("p-nov", "emp-1", "company-1", date(2026, 11, 1), date(2026, 11, 30), payroll.PayslipStateDraft, "4800000"),
		payslip("p-dec", "emp-1", "company-1", date(2026, 12, 1), date(2026, 12, 31), payroll.PayslipStateDraft, "4800000"),
		payslip("p-2025", "emp-1", "company-1", date(2025, 12, 1), date(2025, 12, 31), payroll.PayslipStateDone, "1000000"),
		payslip("p-coworker", "emp-2", "company-1", date(2026, 9, 1), date(2026, 9, 30), payroll.PayslipStateDone, "6000000"),
		payslip("p-tenant", "emp-9", "company-9", date(2026, 9, 1), date(2026, 9, 30), payroll.PayslipStateDone, "7000000"),
	}}
	svc := NewPayrollService(repo, &fakeAttendanceRepo{sessions: sessions}, wib).(*PayrollServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

var actor = employee.Employee{ID: "emp-1", CompanyID: "company-1"}

func TestGetPayslip_Access(t *testing.T) {
	ctx := context.Background()
	svc := setupPayrollService(time.Now(), nil)

	t.Run("owner sees own payslip", func(t *testing.T) {
		res, err := svc.GetPayslip(ctx, actor, user.RoleEmployee, "p-sep")
		require.NoError(t, err)
		assert.Equal(t, "4749999.50", res.NetTotal)
		assert.Equal(t, "9499999.00", res.GrandTotal)
		assert.Len(t, res.Lines, 3)
		assert.Equal(t, "-250000.50", res.Lines[1].Total)
	})

	t.Run("employee cannot see coworker payslip", func(t *testing.T) {
		_, err := svc.GetPayslip(ctx, actor, user.RoleEmployee, "p-coworker")
		assert.ErrorIs(t, err, payroll.ErrPayslipAccessDenied)
	})

	t.Run("manager can see coworker payslip", func(t *testing.T) {
		res, err := svc.GetPayslip(ctx, actor, user.RoleManager, "p-coworker")
		require.NoError(t, err)
		assert.Equal(t, "6000000.00", res.NetTotal)
	})

	t.Run("other company is hidden even from owners", func(t *testing.T) {
		_, err := svc.GetPayslip(ctx, actor, user.RoleOwner, "p-tenant")
		assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.GetPayslip(ctx, actor, user.RoleOwner, "nope")
		assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
	})
}

func TestListMyPayslips(t *testing.T) {
	svc := setupPayrollService(time.Now(), nil)

	res, err := svc.ListMyPayslips(context.Background(), actor, payroll.PayslipFilter{Limit: 4})
	require.NoError(t, err)
	assert.EqualValues(t, 6, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, "4749999.50", res.Payslips[0].Net)
}

func TestGetDashboard(t *testing.T) {
	// Wednesday 2026-10-14, 15:00 local.
	now := time.Date(2026, 10, 14, 15, 0, 0, 0, wib)
	in := func(d, h int) time.Time { return time.Date(2026, 10, d, h, 0, 0, 0, wib).UTC() }
	closedAt := func(d, h int) *time.Time { t := in(d, h); return &t }

	sessions := []attendance.Attendance{
		{CheckIn: in(12, 8), CheckOut: closedAt(12, 17)},
		{CheckIn: in(13, 8), CheckOut: closedAt(13, 12)},
		{CheckIn: in(13, 12), CheckOut: closedAt(13, 13), IsBreak: true},
		{CheckIn: in(13, 13), CheckOut: closedAt(13, 17)},
		{CheckIn: in(14, 9)},
	}
	svc := setupPayrollService(now, sessions)

	res, err := svc.GetDashboard(context.Background(), actor)
	require.NoError(t, err)

	require.Len(t, res.NextPayslips, 2)
	assert.Equal(t, "p-oct", res.NextPayslips[0].ID)
	assert.Equal(t, "p-nov", res.NextPayslips[1].ID)

	assert.Equal(t, 2026, res.YearToDate.Year)
	assert.Equal(t, 2, res.YearToDate.Payslips)
	assert.Equal(t, "9499999.00", res.YearToDate.Net)

	assert.Equal(t, 6.0, res.WorkingHours.TodayHours)
	require.Len(t, res.WorkingHours.WeeklyChart, 7)
	assert.Equal(t, "Mon", res.WorkingHours.WeeklyChart[0].Day)
	assert.Equal(t, "2026-10-12", res.WorkingHours.WeeklyChart[0].Date)
	assert.Equal(t, 9.0, res.WorkingHours.WeeklyChart[0].Hours)
	assert.Equal(t, 8.0, res.WorkingHours.WeeklyChart[1].Hours)
	assert.Equal(t, "Sun", res.WorkingHours.WeeklyChart[6].Day)
	assert.Zero(t, res.WorkingHours.WeeklyChart[6].Hours)
}
