package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/announcement"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
)

type AnnouncementHandler interface {
	ListMyAnnouncements(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &announcementHandlerImpl{
		announcementService: announcementService,
	}
}

// ListMyAnnouncements implements AnnouncementHandler.
func (h *announcementHandlerImpl) ListMyAnnouncements(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	filter := announcement.AnnouncementFilter{
		Search: queryString(r, "search"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}

	result, err := h.announcementService.ListMyAnnouncements(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
