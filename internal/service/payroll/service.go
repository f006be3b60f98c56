package payroll

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// upcomingPayslips is how many payslips the dashboard lists ahead.
const upcomingPayslips = 2

type PayrollServiceImpl struct {
	payroll.PayslipRepository
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
	now            func() time.Time
}

func NewPayrollService(payslipRepository payroll.PayslipRepository, attendanceRepo attendance.AttendanceRepository, loc *time.Location) payroll.PayrollService {
	if loc == nil {
		loc = time.UTC
	}
	return &PayrollServiceImpl{
		PayslipRepository: payslipRepository,
		attendanceRepo:    attendanceRepo,
		loc:               loc,
		now:               time.Now,
	}
}

// ListMyPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListMyPayslips(ctx context.Context, actor employee.Employee, filter payroll.PayslipFilter) (payroll.ListPayslipResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayslipResponse{}, err
	}

	payslips, total, err := s.PayslipRepository.GetMyPayslips(ctx, actor.ID, filter)
	if err != nil {
		return payroll.ListPayslipResponse{}, fmt.Errorf("failed to get payslips: %w", err)
	}

	return payroll.ListPayslipResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Payslips:   mapPayslipSummaries(payslips),
	}, nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, actor employee.Employee, role user.Role, id string) (payroll.PayslipDetailResponse, error) {
	p, err := s.PayslipRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrPayslipNotFound) {
			return payroll.PayslipDetailResponse{}, err
		}
		return payroll.PayslipDetailResponse{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	if p.EmployeeID != actor.ID {
		// Other tenants' payslips are reported as missing.
		if p.CompanyID != actor.CompanyID {
			return payroll.PayslipDetailResponse{}, payroll.ErrPayslipNotFound
		}
		if !user.HasPermission(role, user.PermissionPayslipViewAll) {
			return payroll.PayslipDetailResponse{}, payroll.ErrPayslipAccessDenied
		}
	}

	lines := make([]payroll.PayslipLineResponse, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, payroll.PayslipLineResponse{
			Code:     l.Code,
			Name:     l.Name,
			Category: l.Category,
			Total:    l.Total.StringFixed(2),
		})
	}

	resp := payroll.PayslipDetailResponse{
		ID:         p.ID,
		Number:     p.Number,
		Name:       p.Name,
		DateFrom:   p.DateFrom.Format("2006-01-02"),
		DateTo:     p.DateTo.Format("2006-01-02"),
		State:      string(p.State),
		NetTotal:   p.Net().StringFixed(2),
		GrandTotal: p.GrandTotal().StringFixed(2),
		Lines:      lines,
	}
	if p.CompanyName != nil {
		resp.Company = *p.CompanyName
	}
	if p.CompanyCity != nil {
		resp.Location = *p.CompanyCity
	}

	return resp, nil
}

// GetDashboard implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetDashboard(ctx context.Context, actor employee.Employee) (payroll.PayslipDashboardResponse, error) {
	now := s.now().In(s.loc)
	today := utils.StartOfDay(now, s.loc)
	weekStart := utils.StartOfWeek(now, s.loc)
	weekEnd := weekStart.AddDate(0, 0, 7)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)

	var (
		upcoming []payroll.Payslip
		done     []payroll.Payslip
		sessions []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := s.PayslipRepository.GetUpcoming(gCtx, actor.ID, utils.DateOnly(today), upcomingPayslips)
		if err != nil {
			return fmt.Errorf("failed to get upcoming payslips: %w", err)
		}
		upcoming = data
		return nil
	})

	g.Go(func() error {
		data, err := s.PayslipRepository.ListDoneBetween(gCtx, actor.ID, yearStart, yearStart.AddDate(1, 0, 0))
		if err != nil {
			return fmt.Errorf("failed to list done payslips: %w", err)
		}
		done = data
		return nil
	})

	g.Go(func() error {
		data, err := s.attendanceRepo.ListBetween(gCtx, actor.ID, weekStart.UTC(), weekEnd.UTC())
		if err != nil {
			return fmt.Errorf("failed to list week attendance: %w", err)
		}
		sessions = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return payroll.PayslipDashboardResponse{}, err
	}

	ytd := decimal.Zero
	for _, p := range done {
		ytd = ytd.Add(p.Net())
	}

	worked := attendance.WorkedByDay(sessions, s.loc, now)
	chart := make([]payroll.DailyHours, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		chart = append(chart, payroll.DailyHours{
			Day:   day.Format("Mon"),
			Date:  key,
			Hours: utils.Hours(worked[key]),
		})
	}

	return payroll.PayslipDashboardResponse{
		NextPayslips: mapPayslipSummaries(upcoming),
		YearToDate: payroll.YearToDateTotals{
			Year:     now.Year(),
			Payslips: len(done),
			Net:      ytd.StringFixed(2),
		},
		WorkingHours: payroll.WorkingHours{
			TodayHours:  utils.Hours(worked[today.Format("2006-01-02")]),
			WeeklyChart: chart,
		},
	}, nil
}

func mapPayslipSummaries(payslips []payroll.Payslip) []payroll.PayslipSummaryResponse {
	out := make([]payroll.PayslipSummaryResponse, 0, len(payslips))
	for _, p := range payslips {
		out = append(out, payroll.PayslipSummaryResponse{
			ID:       p.ID,
			Number:   p.Number,
			Name:     p.Name,
			DateFrom: p.DateFrom.Format("2006-01-02"),
			DateTo:   p.DateTo.Format("2006-01-02"),
			State:    string(p.State),
			Net:      p.Net().StringFixed(2),
		})
	}
	return out
}
