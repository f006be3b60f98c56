package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userSelect = `
	SELECT u.id, u.company_id, u.email, u.password_hash, u.role, u.is_active,
		   u.created_at, u.updated_at, e.id
	FROM users u
	LEFT JOIN employees e ON e.user_id = u.id AND e.deleted_at IS NULL
`

func (r *userRepositoryImpl) getOne(ctx context.Context, where string, arg string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	var found user.User
	err := q.QueryRow(ctx, userSelect+where, arg).Scan(
		&found.ID,
		&found.CompanyID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.IsActive,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return found, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getOne(ctx, "WHERE u.id = $1", id)
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, "WHERE LOWER(u.email) = LOWER($1)", email)
}
