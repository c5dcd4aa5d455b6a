package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
)

// ServiceParams groups dependencies for the identity service.
type ServiceParams struct {
	Repo Repository
}

// Service resolves the identity projection for request handling.
type Service struct {
	repo Repository
}

// NewService builds an identity service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// GetIdentity returns the identity view for the user, or a not-found error.
func (s *Service) GetIdentity(ctx context.Context, userID uuid.UUID) (*Identity, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return &Identity{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Phone:       user.Phone,
		UserType:    user.UserType,
		Status:      user.Status,
		CorporateID: user.CorporateID,
	}, nil
}
