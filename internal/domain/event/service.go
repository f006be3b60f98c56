package event

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
)

type EventService interface {
	ListUpcomingEvents(ctx context.Context, actor employee.Employee, filter EventFilter) (ListEventResponse, error)
}
