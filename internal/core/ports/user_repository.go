package ports

import (
	"context"

	"github.com/pagewise/bookstore-api/internal/core/domain"
)

// UserRepository is the credential store behind the authentication service.
type UserRepository interface {
	// FindByEmail resolves an identity by normalized login email, returning
	// nil when no such user exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new identity. Duplicate login names yield
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
