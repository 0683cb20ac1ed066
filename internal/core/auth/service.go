package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/apperror"
)

type Service struct {
	repo       *Repository
	jwtService *JWTService
}

// NewService creates a new auth service
func NewService(db *gorm.DB, jwtSecret string) *Service {
	return &Service{
		repo:       NewRepository(db),
		jwtService: NewJWTService(jwtSecret),
	}
}

// ValidateToken validates an access token and returns its claims
func (s *Service) ValidateToken(accessToken string) (*TokenClaims, error) {
	claims, err := s.jwtService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}
	return claims, nil
}

// ResolveOwner turns a bearer token into the owner record it identifies.
func (s *Service) ResolveOwner(ctx context.Context, accessToken string) (*Owner, error) {
	claims, err := s.ValidateToken(accessToken)
	if err != nil {
		return nil, &apperror.Error{Kind: apperror.KindAuthorization, Message: "Invalid or expired token", Cause: err}
	}

	ownerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid token subject")
	}

	owner, err := s.repo.GetOwnerByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("owner")
		}
		return nil, apperror.Persistence("Failed to load owner", err)
	}
	return owner, nil
}

// GetOwner retrieves an owner by ID
func (s *Service) GetOwner(ctx context.Context, ownerID uuid.UUID) (*Owner, error) {
	owner, err := s.repo.GetOwnerByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("owner")
		}
		return nil, apperror.Persistence("Failed to load owner", err)
	}
	return owner, nil
}

// ListOwners returns all owners (used by scheduled jobs)
func (s *Service) ListOwners(ctx context.Context) ([]Owner, error) {
	return s.repo.ListOwners(ctx)
}

// IssueToken signs a token for an owner. Tooling and tests only.
func (s *Service) IssueToken(owner *Owner) (string, error) {
	return s.jwtService.GenerateAccessToken(&TokenClaims{UserID: owner.ID.String(), Email: owner.Email})
}
