package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID                 string
	CompanyID          string
	Name               string
	Code               *string
	RequiresAllocation bool
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusWaitingApproval LeaveRequestStatus = "waiting_approval"
	LeaveRequestStatusApproved        LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected        LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled       LeaveRequestStatus = "cancelled"
)

var validStatuses = []string{
	string(LeaveRequestStatusWaitingApproval),
	string(LeaveRequestStatusApproved),
	string(LeaveRequestStatusRejected),
	string(LeaveRequestStatusCancelled),
}

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string

	StartDate time.Time
	EndDate   time.Time
	TotalDays int

	Reason string
	Status LeaveRequestStatus

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	LeaveTypeName *string
	EmployeeName  *string
	JobTitle      *string
}

// Covers reports whether day (a date at midnight UTC) lies inside the request.
func (r LeaveRequest) Covers(day time.Time) bool {
	return !day.Before(r.StartDate) && !day.After(r.EndDate)
}
