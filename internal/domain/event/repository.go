package event

import "context"

type EventRepository interface {
	// GetUpcoming returns a page of events of the company, or shared by all companies,
	// that start at or after filter.From, earliest first.
	GetUpcoming(ctx context.Context, companyID string, filter EventFilter) ([]Event, int64, error)
}
