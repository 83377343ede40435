package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"safarihub/internal/auth"
	apperrors "safarihub/internal/errors"
	"safarihub/internal/model"
	"safarihub/internal/repository"
)

const bcryptCost = 10

// AdminService handles admin registration, login and token verification.
type AdminService interface {
	Register(ctx context.Context, email, password string) (*model.Admin, error)
	Authenticate(ctx context.Context, email, password string) (token string, admin *model.Admin, err error)
	VerifyToken(token string) (uuid.UUID, error)
}

type adminService struct {
	repo             repository.AdminRepository
	jwtService       *auth.JWTService
	openRegistration bool
}

// NewAdminService creates a new admin service. With openRegistration false,
// registration is refused once any admin exists.
func NewAdminService(repo repository.AdminRepository, jwtService *auth.JWTService, openRegistration bool) AdminService {
	return &adminService{
		repo:             repo,
		jwtService:       jwtService,
		openRegistration: openRegistration,
	}
}

// Register creates a new admin with a hashed password. Duplicate emails are
// rejected by the persistence layer's unique index, not a racy pre-check.
func (s *adminService) Register(ctx context.Context, email, password string) (*model.Admin, error) {
	if !s.openRegistration {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count admins: %w", err)
		}
		if n > 0 {
			return nil, apperrors.ErrRegistrationClosed
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return admin, nil
}

// Authenticate verifies credentials and issues a 24h token. Unknown email
// and wrong password return the identical error so callers cannot enumerate
// registered emails.
func (s *adminService) Authenticate(ctx context.Context, email, password string) (string, *model.Admin, error) {
	admin, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Only a missing record is a credential failure; anything else is an
		// infrastructure problem and must not masquerade as a 401.
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, admin, nil
}

// VerifyToken checks signature and expiry and returns the embedded admin id.
// Possession of a valid token grants full mutation rights.
func (s *adminService) VerifyToken(token string) (uuid.UUID, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	return claims.AdminID, nil
}
