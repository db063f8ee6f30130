package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"trackswift/internal/apperr"
	"trackswift/internal/domain"
)

// UserRepo represents user repository. Accounts are written by bootstrap
// seeding only; at runtime the collection is read for authentication.
type UserRepo struct{ db *pgxpool.Pool }

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

// GetByUsername returns a user by username, or nil when absent.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, credential, role FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Credential, &u.Role)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &u, nil
}

// Create persists a new user account.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (username, credential, role) VALUES ($1, $2, $3) RETURNING id`,
		u.Username, u.Credential, string(u.Role)).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create user %q: %w", u.Username, err)
	}
	return id, nil
}
