package document

import (
	"context"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
)

type DocumentService interface {
	ListMyDocuments(ctx context.Context, actor employee.Employee, filter DocumentFilter) (ListDocumentResponse, error)
}
