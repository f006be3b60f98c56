package document

import "time"

// EmployeeDocument is an identity or work document held on file for an employee,
// such as an ID card or a work permit.
type EmployeeDocument struct {
	ID          string
	EmployeeID  string
	TypeID      string
	Number      string
	IssueDate   *time.Time
	ExpiryDate  *time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	TypeName string
}

// IsExpired reports whether the document expired before day.
func (d EmployeeDocument) IsExpired(day time.Time) bool {
	return d.ExpiryDate != nil && d.ExpiryDate.Before(day)
}
