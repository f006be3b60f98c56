package announcement

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
)

type AnnouncementService interface {
	ListMyAnnouncements(ctx context.Context, actor employee.Employee, filter AnnouncementFilter) (ListAnnouncementResponse, error)
}
