package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
)

// maxAttempts bounds how often a transition is run when it loses a race.
const maxAttempts = 2

const timeLayout = "15:04:05"

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	loc *time.Location
	now func() time.Time
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// Apply implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Apply(ctx context.Context, actor employee.Employee, req attendance.CheckRequest) (attendance.CheckResponse, error) {
	action, err := attendance.ParseAction(strings.TrimSpace(req.Action))
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	if !actor.HasOffice() {
		return attendance.CheckResponse{}, attendance.ErrOfficeNotConfigured
	}

	if req.Latitude == nil || req.Longitude == nil {
		return attendance.CheckResponse{}, attendance.ErrMissingLocation
	}
	lat, lon := *req.Latitude, *req.Longitude
	if !utils.IsValidCoordinate(lat, lon) {
		return attendance.CheckResponse{}, validator.ValidationErrors{{
			Field:   "location",
			Message: "latitude must be between -90 and 90 and longitude between -180 and 180",
		}}
	}

	radius := actor.RadiusMeters()
	distance := utils.RoundMeters(utils.CalculateHaversineDistance(lat, lon, *actor.OfficeLatitude, *actor.OfficeLongitude))
	if distance > float64(radius) {
		return attendance.CheckResponse{}, &attendance.OutOfRangeError{
			DistanceM:      distance,
			AllowedRadiusM: radius,
		}
	}

	var result attendance.CheckResponse
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err = a.transition(ctx, actor.ID, action, lat, lon)
		if !errors.Is(err, attendance.ErrConcurrencyConflict) {
			break
		}
		slog.Warn("attendance transition conflict",
			"employee_id", actor.ID,
			"action", action,
			"attempt", attempt,
		)
	}
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	result.DistanceM = distance
	result.AllowedRadiusM = radius

	slog.Info("attendance transition",
		"employee_id", actor.ID,
		"action", action,
		"attendance_id", result.AttendanceID,
		"state", result.State,
		"distance_m", distance,
	)

	return result, nil
}

// transition runs one read-validate-write cycle while holding the actor's lock.
func (a *AttendanceServiceImpl) transition(ctx context.Context, employeeID string, action attendance.Action, lat, lon float64) (attendance.CheckResponse, error) {
	var result attendance.CheckResponse

	err := a.tx.WithinLockedTransaction(ctx, "attendance:"+employeeID, func(txCtx context.Context) error {
		openWork, err := a.AttendanceRepository.FindOpenSession(txCtx, employeeID, false)
		if err != nil {
			return fmt.Errorf("failed to get open work session: %w", err)
		}
		openBreak, err := a.AttendanceRepository.FindOpenSession(txCtx, employeeID, true)
		if err != nil {
			return fmt.Errorf("failed to get open break session: %w", err)
		}

		now := a.now().UTC()
		result = attendance.CheckResponse{
			Action:    action,
			Timestamp: now.Format(time.RFC3339),
		}

		switch action {
		case attendance.ActionCheckIn:
			if openWork != nil || openBreak != nil {
				return attendance.ErrAlreadyCheckedIn
			}
			created, err := a.open(txCtx, employeeID, false, now, lat, lon)
			if err != nil {
				return err
			}
			result.AttendanceID = created.ID
			result.State = attendance.StateWorking
			result.Message = "Checked in successfully"

		case attendance.ActionCheckOut:
			if openBreak != nil {
				return attendance.ErrBreakStillOpen
			}
			if openWork == nil {
				return attendance.ErrNoActiveWorkSession
			}
			if err := a.close(txCtx, openWork.ID, now, lat, lon); err != nil {
				return err
			}
			result.AttendanceID = openWork.ID
			result.State = attendance.StateCheckedOut
			result.Message = "Checked out successfully"

		case attendance.ActionBreakIn:
			if openBreak != nil {
				return attendance.ErrAlreadyOnBreak
			}
			if openWork == nil {
				return attendance.ErrNotCheckedIn
			}
			if err := a.close(txCtx, openWork.ID, now, lat, lon); err != nil {
				return err
			}
			created, err := a.open(txCtx, employeeID, true, now, lat, lon)
			if err != nil {
				return err
			}
			result.AttendanceID = created.ID
			result.State = attendance.StateOnBreak
			result.Message = "Break started"

		case attendance.ActionBreakOut:
			if openBreak == nil {
				return attendance.ErrNoActiveBreak
			}
			if openWork != nil {
				return fmt.Errorf("inconsistent attendance state: work %s and break %s are both open", openWork.ID, openBreak.ID)
			}
			if err := a.close(txCtx, openBreak.ID, now, lat, lon); err != nil {
				return err
			}
			created, err := a.open(txCtx, employeeID, false, now, lat, lon)
			if err != nil {
				return err
			}
			result.AttendanceID = created.ID
			result.State = attendance.StateWorking
			result.Message = "Break ended"

		default:
			return attendance.ErrInvalidAction
		}

		return nil
	})
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	return result, nil
}

func (a *AttendanceServiceImpl) open(ctx context.Context, employeeID string, isBreak bool, at time.Time, lat, lon float64) (attendance.Attendance, error) {
	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID:  employeeID,
		CheckIn:     at,
		IsBreak:     isBreak,
		InLatitude:  &lat,
		InLongitude: &lon,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrConcurrencyConflict) {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance session: %w", err)
	}
	return created, nil
}

func (a *AttendanceServiceImpl) close(ctx context.Context, id string, at time.Time, lat, lon float64) error {
	if err := a.AttendanceRepository.Close(ctx, id, at, lat, lon); err != nil {
		if errors.Is(err, attendance.ErrConcurrencyConflict) {
			return err
		}
		return fmt.Errorf("failed to close attendance session: %w", err)
	}
	return nil
}

// GetTodayLog implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayLog(ctx context.Context, actor employee.Employee) (attendance.TodayLogResponse, error) {
	now := a.now().In(a.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc)
	end := start.AddDate(0, 0, 1)

	sessions, err := a.AttendanceRepository.ListBetween(ctx, actor.ID, start.UTC(), end.UTC())
	if err != nil {
		return attendance.TodayLogResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	status, err := a.GetStatus(ctx, actor)
	if err != nil {
		return attendance.TodayLogResponse{}, err
	}

	resp := attendance.TodayLogResponse{
		Date:  start.Format("2006-01-02"),
		State: status.State,
	}

	var worked, onBreak time.Duration
	var firstWork, lastBreak *attendance.Attendance
	for i := range sessions {
		s := &sessions[i]
		if s.IsBreak {
			onBreak += s.Duration(now)
			if resp.TimeLogs.BreakStart == nil {
				resp.TimeLogs.BreakStart = a.formatClock(&s.CheckIn)
			}
			lastBreak = s
			continue
		}
		worked += s.Duration(now)
		if firstWork == nil {
			firstWork = s
		}
	}

	if firstWork != nil {
		resp.TimeLogs.ClockIn = a.formatClock(&firstWork.CheckIn)
	}
	if lastBreak != nil {
		resp.TimeLogs.BreakEnd = a.formatClock(lastBreak.CheckOut)
	}
	// Clock-out is only reported once the day's last session is a closed work session.
	if n := len(sessions); n > 0 && !sessions[n-1].IsBreak && !sessions[n-1].IsOpen() {
		resp.TimeLogs.ClockOut = a.formatClock(sessions[n-1].CheckOut)
	}

	resp.WorkedMinutes = int(worked.Minutes())
	resp.BreakMinutes = int(onBreak.Minutes())

	return resp, nil
}

func (a *AttendanceServiceImpl) formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(a.loc).Format(timeLayout)
	return &s
}

// GetStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetStatus(ctx context.Context, actor employee.Employee) (attendance.StatusResponse, error) {
	openWork, err := a.AttendanceRepository.FindOpenSession(ctx, actor.ID, false)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get open work session: %w", err)
	}
	openBreak, err := a.AttendanceRepository.FindOpenSession(ctx, actor.ID, true)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to get open break session: %w", err)
	}

	resp := attendance.StatusResponse{
		OfficeConfigured: actor.HasOffice(),
		AllowedRadiusM:   actor.RadiusMeters(),
	}

	switch {
	case openBreak != nil:
		resp.State = attendance.StateOnBreak
		resp.OpenBreakID = &openBreak.ID
		resp.Since = timePtrToString(&openBreak.CheckIn)
		resp.AllowedActions = []attendance.Action{attendance.ActionBreakOut}
	case openWork != nil:
		resp.State = attendance.StateWorking
		resp.Since = timePtrToString(&openWork.CheckIn)
		resp.AllowedActions = []attendance.Action{attendance.ActionCheckOut, attendance.ActionBreakIn}
	default:
		resp.State = attendance.StateCheckedOut
		resp.AllowedActions = []attendance.Action{attendance.ActionCheckIn}
	}
	if openWork != nil {
		resp.OpenWorkID = &openWork.ID
	}

	return resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, actor employee.Employee, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		from, _ := time.ParseInLocation("2006-01-02", *filter.StartDate, a.loc)
		from = from.UTC()
		filter.CheckInFrom = &from
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		to, _ := time.ParseInLocation("2006-01-02", *filter.EndDate, a.loc)
		to = to.AddDate(0, 0, 1).UTC()
		filter.CheckInTo = &to
	}

	attendances, total, err := a.AttendanceRepository.GetMyAttendance(ctx, actor.ID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 || (filter.Page-1)*filter.Limit >= int(total) {
		showing = fmt.Sprintf("0 of %d", total)
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var duration *int
	if att.CheckOut != nil {
		mins := int(att.CheckOut.Sub(att.CheckIn).Minutes())
		duration = &mins
	}

	return attendance.AttendanceResponse{
		ID:              att.ID,
		EmployeeID:      att.EmployeeID,
		Kind:            att.Kind(),
		CheckIn:         att.CheckIn.UTC().Format(time.RFC3339),
		CheckOut:        timePtrToString(att.CheckOut),
		InLatitude:      att.InLatitude,
		InLongitude:     att.InLongitude,
		OutLatitude:     att.OutLatitude,
		OutLongitude:    att.OutLongitude,
		DurationMinutes: duration,
	}
}
