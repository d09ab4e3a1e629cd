package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

const minPasswordLen = 8

// AuthService implements registration, login and per-request token
// verification. Tokens are HS256 JWTs carrying {sub, email, iat, exp}; they
// are never persisted, so revocation is by expiry or secret rotation only.
type AuthService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, roles: roles, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a new identity with the lowest-privilege viewer role.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || len(input.Password) < minPasswordLen {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roleID := ""
	if viewer, err := s.roles.FindByName(ctx, domain.RoleViewer); err == nil {
		roleID = viewer.ID
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: string(hash),
		RoleID:       roleID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}

// Login verifies credentials and issues a session token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, domain.ErrAccountDisabled
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyToken decodes the signed claim set, rejects invalid signatures and
// expired tokens, then resolves the identity and its role. The role is
// re-fetched on every call so role changes apply on the next request.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, *domain.Role, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, nil, domain.ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, sub)
	if err != nil {
		return nil, nil, domain.ErrUnauthenticated
	}
	if !user.IsActive {
		// Deactivated accounts are treated as if unauthenticated.
		return nil, nil, domain.ErrUnauthenticated
	}

	var role *domain.Role
	if user.RoleID != "" {
		if r, err := s.roles.FindByID(ctx, user.RoleID); err == nil {
			role = r
		}
	}
	return user, role, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
