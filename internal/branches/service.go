package branches

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/db/models"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
)

// CollectionBranches is the cache collection invalidated on branch mutations.
const CollectionBranches = "branches"

type cacheInvalidator interface {
	CacheKey(collection string, parts ...string) string
	InvalidateCollections(ctx context.Context, keys ...string) error
}

// ServiceParams groups dependencies for the branches service.
type ServiceParams struct {
	Repo   Repository
	Cache  cacheInvalidator
	Logger *logger.Logger
}

// Service manages branch locations under vendor accounts.
type Service struct {
	repo   Repository
	cache  cacheInvalidator
	logger *logger.Logger
}

// NewService builds a branches service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: params.Repo, cache: params.Cache, logger: params.Logger}, nil
}

// CreateInput models a new branch request.
type CreateInput struct {
	VendorID  uuid.UUID  `json:"vendor_id" validate:"required"`
	Name      string     `json:"name" validate:"required"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	ManagerID *uuid.UUID `json:"manager_id"`
}

// Create persists a new active branch and refreshes the branches cache.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Branch, error) {
	if input.VendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor_id is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	branch := &models.Branch{
		ID:        uuid.New(),
		VendorID:  input.VendorID,
		ManagerID: input.ManagerID,
		Name:      name,
		Status:    enums.BranchStatusActive,
	}
	if addr := strings.TrimSpace(input.Address); addr != "" {
		branch.Address = &addr
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		branch.Phone = &phone
	}

	if err := s.repo.Create(ctx, branch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating branch")
	}
	s.invalidate(ctx, input.VendorID)
	return branch, nil
}

// ListByVendor returns the vendor's active branches.
func (s *Service) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Branch, error) {
	branchRows, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing branches")
	}
	return branchRows, nil
}

// AssignManager sets or replaces the branch manager.
func (s *Service) AssignManager(ctx context.Context, branchID, managerID uuid.UUID) (*models.Branch, error) {
	branch, err := s.load(ctx, branchID)
	if err != nil {
		return nil, err
	}
	branch.ManagerID = &managerID
	if err := s.repo.Update(ctx, branch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating branch")
	}
	s.invalidate(ctx, branch.VendorID)
	return branch, nil
}

// Deactivate retires a branch. Deactivating twice is a state conflict.
func (s *Service) Deactivate(ctx context.Context, branchID uuid.UUID) (*models.Branch, error) {
	branch, err := s.load(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch.Status == enums.BranchStatusInactive {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "branch already inactive")
	}
	branch.Status = enums.BranchStatusInactive
	if err := s.repo.Update(ctx, branch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating branch")
	}
	s.invalidate(ctx, branch.VendorID)
	return branch, nil
}

func (s *Service) load(ctx context.Context, branchID uuid.UUID) (*models.Branch, error) {
	branch, err := s.repo.FindByID(ctx, branchID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading branch")
	}
	if branch == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "branch not found")
	}
	return branch, nil
}

func (s *Service) invalidate(ctx context.Context, vendorID uuid.UUID) {
	if s.cache == nil {
		return
	}
	keys := []string{
		s.cache.CacheKey(CollectionBranches),
		s.cache.CacheKey(CollectionBranches, vendorID.String()),
	}
	if err := s.cache.InvalidateCollections(ctx, keys...); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "invalidating branches cache failed")
	}
}
