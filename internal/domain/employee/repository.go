package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	UpdateOffice(ctx context.Context, id string, companyID string, req UpdateOfficeRequest) (Employee, error)
}
