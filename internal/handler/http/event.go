package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/event"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
)

type EventHandler interface {
	ListUpcomingEvents(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &eventHandlerImpl{
		eventService: eventService,
	}
}

// ListUpcomingEvents implements EventHandler.
func (h *eventHandlerImpl) ListUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	filter := event.EventFilter{
		Search: queryString(r, "search"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}

	result, err := h.eventService.ListUpcomingEvents(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
