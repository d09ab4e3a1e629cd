package ports

import (
	"context"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService implements registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed session token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// VerifyToken validates the token signature and expiry and resolves the
	// embedded identity together with its role. The role may be nil.
	VerifyToken(ctx context.Context, token string) (*domain.User, *domain.Role, error)
}
