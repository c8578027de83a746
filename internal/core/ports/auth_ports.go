package ports

import (
	"context"

	"github.com/vendio/api/internal/core/domain"
)

// AuthService verifies credentials and produces an Identity. Failure
// modes are sentinel errors (domain.ErrInvalidCredentials,
// domain.ErrEmailExists) or *domain.ValidationError for bad input.
type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Signup(ctx context.Context, email, password string) (domain.Identity, error)
}
