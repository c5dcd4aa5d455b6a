package corporate

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/giftdash/giftdash-backend/pkg/db/models"
	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// Record is a corporate user with its nested business data. The wizard's
// same-as-corporate sections copy from this.
type Record struct {
	User              models.User
	BusinessDetails   []models.BusinessDetail
	BusinessDocuments []models.BusinessDocument
	IDImages          []models.IDImage
}

// Repository loads corporate records.
type Repository interface {
	FindRecordByID(ctx context.Context, corporateID uuid.UUID) (*Record, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a corporate repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindRecordByID(ctx context.Context, corporateID uuid.UUID) (*Record, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", corporateID).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	record := &Record{User: user}

	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", corporateID).
		Order("created_at ASC").
		Find(&record.BusinessDetails).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", corporateID).
		Order("created_at ASC").
		Find(&record.BusinessDocuments).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", corporateID).
		Order("created_at ASC").
		Find(&record.IDImages).Error; err != nil {
		return nil, err
	}

	return record, nil
}

// IDImageKey returns the stored key for the requested identity document kind,
// or empty when the corporate record has none.
func (r *Record) IDImageKey(kind enums.DocumentKind) string {
	for _, img := range r.IDImages {
		if img.Kind == kind {
			return img.FileKey
		}
	}
	return ""
}

// DocumentKey returns the stored key for the requested business document
// kind, or empty when the corporate record has none.
func (r *Record) DocumentKey(kind enums.DocumentKind) string {
	for _, doc := range r.BusinessDocuments {
		if doc.Kind == kind {
			return doc.FileKey
		}
	}
	return ""
}

// PrimaryBusinessDetail returns the oldest business detail row, or nil.
func (r *Record) PrimaryBusinessDetail() *models.BusinessDetail {
	if len(r.BusinessDetails) == 0 {
		return nil
	}
	return &r.BusinessDetails[0]
}
