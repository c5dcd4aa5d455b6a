package vendors

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/db/models"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
)

// ServiceParams groups dependencies for the vendors service.
type ServiceParams struct {
	Repo Repository
}

// Service serves vendor account reads for the dashboard. Creation happens
// only through the onboarding wizard.
type Service struct {
	repo Repository
}

// NewService builds a vendors service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// Get returns the vendor account, or a not-found error.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.VendorAccount, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading vendor account")
	}
	if account == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor account not found")
	}
	return account, nil
}

// ListByCorporate returns the vendor accounts under a corporate parent.
func (s *Service) ListByCorporate(ctx context.Context, corporateID uuid.UUID) ([]models.VendorAccount, error) {
	accounts, err := s.repo.ListByCorporate(ctx, corporateID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing vendor accounts")
	}
	return accounts, nil
}

// ListByCreator returns the vendor accounts created by the user.
func (s *Service) ListByCreator(ctx context.Context, userID uuid.UUID) ([]models.VendorAccount, error) {
	accounts, err := s.repo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing vendor accounts")
	}
	return accounts, nil
}
