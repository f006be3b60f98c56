package event

import "time"

// Event is a company event open for registration. A zero SeatsMax means
// attendance is not limited.
type Event struct {
	ID          string
	CompanyID   *string
	Name        string
	DateBegin   time.Time
	DateEnd     time.Time
	Location    *string
	SeatsMax    int
	SeatsTaken  int
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SeatsAvailable returns the free seats of a limited event, or 0 when unlimited.
func (e Event) SeatsAvailable() int {
	if e.SeatsMax <= 0 {
		return 0
	}
	return max(e.SeatsMax-e.SeatsTaken, 0)
}
