package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/document"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

// GetMyDocuments implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetMyDocuments(ctx context.Context, employeeID string, filter document.DocumentFilter) ([]document.EmployeeDocument, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "d.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND t.name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	from := "FROM employee_documents d JOIN document_types t ON t.id = d.document_type_id WHERE " + baseWhere

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT d.id, d.employee_id, d.document_type_id, d.document_number, d.issue_date,
			   d.expiry_date, d.description, d.created_at, d.updated_at, t.name
		%s
		ORDER BY d.issue_date DESC NULLS LAST, d.created_at DESC
		LIMIT $%d OFFSET $%d
	`, from, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []document.EmployeeDocument
	for rows.Next() {
		var d document.EmployeeDocument
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.TypeID, &d.Number, &d.IssueDate,
			&d.ExpiryDate, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.TypeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, total, nil
}
