package attendance

import (
	"time"
)

// Attendance is one continuous work or break session. A nil CheckOut means the
// session is still open.
type Attendance struct {
	ID           string
	EmployeeID   string
	CheckIn      time.Time
	CheckOut     *time.Time
	IsBreak      bool
	InLatitude   *float64
	InLongitude  *float64
	OutLatitude  *float64
	OutLongitude *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOpen reports whether the session has not been closed yet.
func (a Attendance) IsOpen() bool {
	return a.CheckOut == nil
}

// Duration returns the closed length of the session, or the elapsed time until now when open.
func (a Attendance) Duration(now time.Time) time.Duration {
	if a.CheckOut != nil {
		return a.CheckOut.Sub(a.CheckIn)
	}
	return now.Sub(a.CheckIn)
}

// Kind returns "break" or "work".
func (a Attendance) Kind() string {
	if a.IsBreak {
		return KindBreak
	}
	return KindWork
}

const (
	KindWork  = "work"
	KindBreak = "break"
)

type Action string

const (
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
	ActionBreakIn  Action = "break_in"
	ActionBreakOut Action = "break_out"
)

// ParseAction returns the Action for s, or ErrInvalidAction.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionCheckIn, ActionCheckOut, ActionBreakIn, ActionBreakOut:
		return a, nil
	default:
		return "", ErrInvalidAction
	}
}

// State is the derived position of an actor in the work/break cycle.
type State string

const (
	StateCheckedOut State = "checked_out"
	StateWorking    State = "working"
	StateOnBreak    State = "on_break"
)

// WorkedByDay sums closed and running work time per local calendar day of check-in,
// keyed by "2006-01-02". Break sessions are ignored.
func WorkedByDay(sessions []Attendance, loc *time.Location, now time.Time) map[string]time.Duration {
	out := make(map[string]time.Duration)
	for _, s := range sessions {
		if s.IsBreak {
			continue
		}
		out[s.CheckIn.In(loc).Format("2006-01-02")] += s.Duration(now)
	}
	return out
}
