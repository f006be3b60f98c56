package document

import "github.com/cmlabs-hris/hris-mobile-api/internal/pkg/validator"

type DocumentFilter struct {
	Search *string `json:"search,omitempty"` // matches the document type name
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

func (f *DocumentFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DocumentResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DocumentNumber string  `json:"document_number"`
	IssueDate      *string `json:"issue_date"`
	ExpiryDate     *string `json:"expiry_date"`
	Expired        bool    `json:"expired"`
	Description    string  `json:"description"`
}

type ListDocumentResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Documents  []DocumentResponse `json:"documents"`
}
