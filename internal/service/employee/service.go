package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/leave"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Worked time under this threshold makes a day a half day.
const halfDayThreshold = 4 * time.Hour

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	loc            *time.Location
	now            func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	loc *time.Location,
) employee.EmployeeService {
	if loc == nil {
		loc = time.UTC
	}
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// ResolveActor implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ResolveActor(ctx context.Context, userID string) (employee.Employee, error) {
	if userID == "" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to resolve employee for user %s: %w", userID, err)
	}

	return emp, nil
}

// GetProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, actor employee.Employee) (employee.ProfileResponse, error) {
	now := s.now().In(s.loc)
	today := utils.StartOfDay(now, s.loc)
	weekStart := utils.StartOfWeek(now, s.loc)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var (
		sessions []attendance.Attendance
		leaves   []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := s.attendanceRepo.ListBetween(gCtx, actor.ID, weekStart.UTC(), weekEnd.UTC())
		if err != nil {
			return fmt.Errorf("failed to list week attendance: %w", err)
		}
		sessions = data
		return nil
	})

	g.Go(func() error {
		data, err := s.leaveRepo.ListApprovedBetween(gCtx, actor.ID, utils.DateOnly(weekStart), utils.DateOnly(weekEnd.AddDate(0, 0, -1)))
		if err != nil {
			return fmt.Errorf("failed to list week leave: %w", err)
		}
		leaves = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return employee.ProfileResponse{}, err
	}

	worked := attendance.WorkedByDay(sessions, s.loc, now)

	var summary employee.AttendanceSummary
	weekly := make([]employee.DailyHours, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		hours := worked[key]

		weekly = append(weekly, employee.DailyHours{Date: key, Hours: utils.Hours(hours)})

		switch {
		case hours > 0 && hours < halfDayThreshold && day.Before(today):
			summary.HalfDay++
		case hours > 0:
			summary.Present++
		case onLeave(leaves, day):
			summary.Leave++
		case day.After(today) || day.Equal(today):
			summary.Upcoming++
		case utils.IsWeekend(day):
			summary.WeekOff++
		default:
			summary.Absent++
		}
	}

	return employee.ProfileResponse{
		Employee:          mapEmployeeToResponse(actor),
		WeekStart:         weekStart.Format("2006-01-02"),
		WeekEnd:           weekEnd.AddDate(0, 0, -1).Format("2006-01-02"),
		AttendanceSummary: summary,
		WeeklyHours:       weekly,
		TodayHours:        utils.Hours(worked[today.Format("2006-01-02")]),
	}, nil
}

func onLeave(leaves []leave.LeaveRequest, day time.Time) bool {
	d := utils.DateOnly(day)
	for _, l := range leaves {
		if l.Covers(d) {
			return true
		}
	}
	return false
}

// UpdateOfficeLocation implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateOfficeLocation(ctx context.Context, caller employee.Caller, employeeID string, req employee.UpdateOfficeRequest) (employee.EmployeeResponse, error) {
	if !user.HasPermission(caller.Role, user.PermissionOfficeManage) {
		slog.Warn("office update denied", "user_id", caller.UserID, "role", caller.Role, "employee_id", employeeID)
		return employee.EmployeeResponse{}, employee.ErrAccessDenied
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.UpdateOffice(ctx, employeeID, caller.CompanyID, req)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update office location: %w", err)
	}

	slog.Info("office location updated",
		"employee_id", updated.ID,
		"updated_by", caller.UserID,
		"allowed_radius_m", updated.RadiusMeters(),
	)

	return mapEmployeeToResponse(updated), nil
}

func mapEmployeeToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		JobTitle:     e.JobTitle,
		WorkEmail:    e.WorkEmail,
		PhoneNumber:  e.PhoneNumber,
		AvatarURL:    e.AvatarURL,
		Office: employee.OfficeResponse{
			Configured:     e.HasOffice(),
			Latitude:       e.OfficeLatitude,
			Longitude:      e.OfficeLongitude,
			AllowedRadiusM: e.RadiusMeters(),
		},
	}
}
