package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lunchbox/catering-api/internal/core/domain"
)

//go:embed schema.sql
var schemaSQL string

// pool is the subset of pgxpool.Pool the repository uses. pgxmock satisfies
// it as well, so the repository is testable without a database.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository implements ports.UserRepository on PostgreSQL. Email
// uniqueness is enforced by the users table's UNIQUE constraint; a violation
// on insert surfaces as domain.ErrUserExists, which closes the
// check-then-act window between two concurrent registrations.
type UserRepository struct {
	pool pool
}

func NewUserRepository(pool pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Migrate applies the users schema. Idempotent.
func (r *UserRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply users schema: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name, email, password_hash, role, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (full_name, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		user.FullName, user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt,
	).Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrUserExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserCreateFailed
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}
