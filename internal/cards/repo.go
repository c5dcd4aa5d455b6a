package cards

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giftdash/giftdash-backend/pkg/db/models"
)

// Repository handles card product persistence.
type Repository interface {
	Create(ctx context.Context, product *models.CardProduct) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.CardProduct, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.CardProduct, error)
	Update(ctx context.Context, product *models.CardProduct) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a card product repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, product *models.CardProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.CardProduct, error) {
	var product models.CardProduct
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *repository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.CardProduct, error) {
	var products []models.CardProduct
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND active", vendorID).
		Order("tier ASC, face_value ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) Update(ctx context.Context, product *models.CardProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}
