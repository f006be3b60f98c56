package event

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/event"
)

type EventServiceImpl struct {
	event.EventRepository
	location *time.Location
	now      func() time.Time
}

func NewEventService(eventRepository event.EventRepository, location *time.Location) event.EventService {
	if location == nil {
		location = time.UTC
	}
	return &EventServiceImpl{
		EventRepository: eventRepository,
		location:        location,
		now:             time.Now,
	}
}

// ListUpcomingEvents implements event.EventService.
func (s *EventServiceImpl) ListUpcomingEvents(ctx context.Context, actor employee.Employee, filter event.EventFilter) (event.ListEventResponse, error) {
	if err := filter.Validate(); err != nil {
		return event.ListEventResponse{}, err
	}
	filter.From = s.now()

	events, total, err := s.EventRepository.GetUpcoming(ctx, actor.CompanyID, filter)
	if err != nil {
		return event.ListEventResponse{}, fmt.Errorf("failed to get upcoming events: %w", err)
	}

	responses := make([]event.EventResponse, 0, len(events))
	for _, e := range events {
		res := event.EventResponse{
			ID:             e.ID,
			Name:           e.Name,
			StartDatetime:  e.DateBegin.In(s.location).Format(time.RFC3339),
			EndDatetime:    e.DateEnd.In(s.location).Format(time.RFC3339),
			SeatsMax:       e.SeatsMax,
			SeatsAvailable: e.SeatsAvailable(),
		}
		if e.Location != nil {
			res.Location = *e.Location
		}
		if e.Description != nil {
			res.Description = *e.Description
		}
		responses = append(responses, res)
	}

	return event.ListEventResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Events:     responses,
	}, nil
}
