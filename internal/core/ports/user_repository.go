package ports

import (
	"context"

	"github.com/lunchbox/catering-api/internal/core/domain"
)

// UserRepository is the narrow persistence contract the auth flows consume.
// The store owns id assignment and email uniqueness; Create must surface a
// uniqueness-constraint violation as domain.ErrUserExists so that two
// concurrent registrations for the same email cannot both succeed.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
