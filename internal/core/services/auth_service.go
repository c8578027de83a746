package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vendio/api/internal/core/domain"
	"github.com/vendio/api/internal/core/ports"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService verifies email/password credentials against the user
// store. Login failures collapse into domain.ErrInvalidCredentials so
// responses never reveal whether an email is registered.
type AuthService struct {
	users ports.UserRepository
}

func NewAuthService(users ports.UserRepository) ports.AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	if err := validateEmail(email); err != nil {
		return domain.Identity{}, err
	}
	// No minimum length on login; the only rule is presence.
	if err := validatePassword(password, false); err != nil {
		return domain.Identity{}, err
	}

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return domain.Identity{ID: user.ID, Email: user.Email}, nil
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (domain.Identity, error) {
	if err := validateEmail(email); err != nil {
		return domain.Identity{}, err
	}
	if err := validatePassword(password, true); err != nil {
		return domain.Identity{}, err
	}

	trimmed := strings.TrimSpace(email)

	existing, err := s.users.GetByEmail(ctx, trimmed)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		return domain.Identity{}, domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{Email: trimmed, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		// Two signups can race past the existence check; the unique
		// constraint is the real guard and the loser still gets a
		// conflict, not a server error.
		if errors.Is(err, domain.ErrEmailExists) {
			return domain.Identity{}, domain.ErrEmailExists
		}
		return domain.Identity{}, fmt.Errorf("failed to create user: %w", err)
	}

	return domain.Identity{ID: user.ID, Email: user.Email}, nil
}

func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return domain.NewValidationError("Email is required.")
	}
	if !emailRegex.MatchString(trimmed) {
		return domain.NewValidationError("Please provide a valid email address.")
	}
	return nil
}

func validatePassword(password string, signup bool) error {
	if password == "" {
		return domain.NewValidationError("Password is required.")
	}
	if signup && len(password) < 6 {
		return domain.NewValidationError("Password must be at least 6 characters.")
	}
	return nil
}
