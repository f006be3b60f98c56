package announcement

import (
	"context"
	"fmt"
	"math"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/announcement"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
}

func NewAnnouncementService(announcementRepository announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{AnnouncementRepository: announcementRepository}
}

// ListMyAnnouncements implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) ListMyAnnouncements(ctx context.Context, actor employee.Employee, filter announcement.AnnouncementFilter) (announcement.ListAnnouncementResponse, error) {
	if err := filter.Validate(); err != nil {
		return announcement.ListAnnouncementResponse{}, err
	}

	items, total, err := s.AnnouncementRepository.GetVisible(ctx, actor.ID, actor.CompanyID, filter)
	if err != nil {
		return announcement.ListAnnouncementResponse{}, fmt.Errorf("failed to get announcements: %w", err)
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(items))
	for _, a := range items {
		responses = append(responses, mapAnnouncementToResponse(a))
	}

	return announcement.ListAnnouncementResponse{
		TotalCount:    total,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    int(math.Ceil(float64(total) / float64(filter.Limit))),
		Announcements: responses,
	}, nil
}

func mapAnnouncementToResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	res := announcement.AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		IsGeneral: a.IsGeneral,
	}
	if a.DateStart != nil {
		start := a.DateStart.Format("2006-01-02")
		res.StartDate = &start
	}
	if a.DateEnd != nil {
		end := a.DateEnd.Format("2006-01-02")
		res.EndDate = &end
	}
	if a.CompanyName != nil {
		res.Company = *a.CompanyName
	}
	return res
}
