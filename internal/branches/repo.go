package branches

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giftdash/giftdash-backend/pkg/db/models"
	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// Repository handles branch persistence.
type Repository interface {
	Create(ctx context.Context, branch *models.Branch) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Branch, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Branch, error)
	Update(ctx context.Context, branch *models.Branch) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a branch repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&branch).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

func (r *repository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Branch, error) {
	var branchRows []models.Branch
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND status = ?", vendorID, enums.BranchStatusActive).
		Order("created_at ASC").
		Find(&branchRows).Error; err != nil {
		return nil, err
	}
	return branchRows, nil
}

func (r *repository) Update(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}
