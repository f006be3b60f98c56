package document

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/document"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentRepo struct {
	documents []document.EmployeeDocument
	err       error
	filter    document.DocumentFilter
}

func (f *fakeDocumentRepo) GetMyDocuments(_ context.Context, employeeID string, filter document.DocumentFilter) ([]document.EmployeeDocument, int64, error) {
	f.filter = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []document.EmployeeDocument
	for _, d := range f.documents {
		if d.EmployeeID != employeeID {
			continue
		}
		if filter.Search != nil && !strings.Contains(strings.ToLower(d.TypeName), strings.ToLower(*filter.Search)) {
			continue
		}
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

var actor = employee.Employee{ID: "emp-1", CompanyID: "company-1"}

func ptr[T any](v T) *T { return &v }

func TestListMyDocuments(t *testing.T) {
	ctx := context.Background()
	jakarta := time.FixedZone("WIB", 7*3600)

	issued := time.Date(2024, 3, 1, 2, 30, 0, 0, time.UTC)
	passportExpiry := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	permitExpiry := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	repo := &fakeDocumentRepo{documents: []document.EmployeeDocument{
		{ID: "doc-1", EmployeeID: "emp-1", TypeName: "Passport", Number: "A123", IssueDate: &issued, ExpiryDate: &passportExpiry, Description: ptr("renew soon")},
		{ID: "doc-2", EmployeeID: "emp-1", TypeName: "Work Permit", Number: "WP-9", ExpiryDate: &permitExpiry},
		{ID: "doc-3", EmployeeID: "emp-2", TypeName: "Passport", Number: "B456"},
	}}
	svc := NewDocumentService(repo, jakarta).(*DocumentServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC) }

	t.Run("lists only the caller's documents", func(t *testing.T) {
		res, err := svc.ListMyDocuments(ctx, actor, document.DocumentFilter{})
		require.NoError(t, err)

		assert.Equal(t, int64(2), res.TotalCount)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 10, res.Limit)
		assert.Equal(t, 1, res.TotalPages)
		require.Len(t, res.Documents, 2)

		passport := res.Documents[0]
		assert.Equal(t, "Passport", passport.Name)
		assert.Equal(t, "A123", passport.DocumentNumber)
		assert.Equal(t, "renew soon", passport.Description)
		require.NotNil(t, passport.IssueDate)
		assert.Equal(t, "2024-03-01T09:30:00+07:00", *passport.IssueDate)
		require.NotNil(t, passport.ExpiryDate)
		assert.Equal(t, "2026-10-17", *passport.ExpiryDate)
	})

	t.Run("expiry is judged against the company day", func(t *testing.T) {
		res, err := svc.ListMyDocuments(ctx, actor, document.DocumentFilter{})
		require.NoError(t, err)

		// 20:00 UTC on the 17th is already the 18th in Jakarta.
		assert.True(t, res.Documents[0].Expired)
		assert.False(t, res.Documents[1].Expired)
		assert.Nil(t, res.Documents[1].IssueDate)
	})

	t.Run("search is passed through", func(t *testing.T) {
		res, err := svc.ListMyDocuments(ctx, actor, document.DocumentFilter{Search: ptr("permit")})
		require.NoError(t, err)
		require.Len(t, res.Documents, 1)
		assert.Equal(t, "doc-2", res.Documents[0].ID)
		assert.Equal(t, "permit", *repo.filter.Search)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, err := svc.ListMyDocuments(ctx, actor, document.DocumentFilter{Limit: 500})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "limit", verrs[0].Field)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		boom := errors.New("db down")
		failing := NewDocumentService(&fakeDocumentRepo{err: boom}, nil)
		_, err := failing.ListMyDocuments(ctx, actor, document.DocumentFilter{})
		assert.ErrorIs(t, err, boom)
	})
}
