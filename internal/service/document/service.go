package document

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/document"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
)

type DocumentServiceImpl struct {
	document.DocumentRepository
	location *time.Location
	now      func() time.Time
}

func NewDocumentService(documentRepository document.DocumentRepository, location *time.Location) document.DocumentService {
	if location == nil {
		location = time.UTC
	}
	return &DocumentServiceImpl{
		DocumentRepository: documentRepository,
		location:           location,
		now:                time.Now,
	}
}

// ListMyDocuments implements document.DocumentService.
func (s *DocumentServiceImpl) ListMyDocuments(ctx context.Context, actor employee.Employee, filter document.DocumentFilter) (document.ListDocumentResponse, error) {
	if err := filter.Validate(); err != nil {
		return document.ListDocumentResponse{}, err
	}

	docs, total, err := s.DocumentRepository.GetMyDocuments(ctx, actor.ID, filter)
	if err != nil {
		return document.ListDocumentResponse{}, fmt.Errorf("failed to get documents: %w", err)
	}

	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	responses := make([]document.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		responses = append(responses, s.mapDocumentToResponse(d, today))
	}

	return document.ListDocumentResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Documents:  responses,
	}, nil
}

func (s *DocumentServiceImpl) mapDocumentToResponse(d document.EmployeeDocument, today time.Time) document.DocumentResponse {
	res := document.DocumentResponse{
		ID:             d.ID,
		Name:           d.TypeName,
		DocumentNumber: d.Number,
		Expired:        d.IsExpired(today),
	}
	if d.IssueDate != nil {
		issued := d.IssueDate.In(s.location).Format(time.RFC3339)
		res.IssueDate = &issued
	}
	if d.ExpiryDate != nil {
		expiry := d.ExpiryDate.Format("2006-01-02")
		res.ExpiryDate = &expiry
	}
	if d.Description != nil {
		res.Description = *d.Description
	}
	return res
}
