package vendors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giftdash/giftdash-backend/pkg/db/models"
)

// Repository handles vendor account persistence.
type Repository interface {
	Create(ctx context.Context, account *models.VendorAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.VendorAccount, error)
	ListByCorporate(ctx context.Context, corporateID uuid.UUID) ([]models.VendorAccount, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]models.VendorAccount, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a vendor repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, account *models.VendorAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.VendorAccount, error) {
	var account models.VendorAccount
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *repository) ListByCorporate(ctx context.Context, corporateID uuid.UUID) ([]models.VendorAccount, error) {
	var accounts []models.VendorAccount
	if err := r.db.WithContext(ctx).
		Where("corporate_id = ?", corporateID).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *repository) ListByCreator(ctx context.Context, userID uuid.UUID) ([]models.VendorAccount, error) {
	var accounts []models.VendorAccount
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
