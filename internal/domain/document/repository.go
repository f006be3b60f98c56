package document

import "context"

type DocumentRepository interface {
	// GetMyDocuments returns a page of the employee's documents, newest issue first.
	GetMyDocuments(ctx context.Context, employeeID string, filter DocumentFilter) ([]EmployeeDocument, int64, error)
}
