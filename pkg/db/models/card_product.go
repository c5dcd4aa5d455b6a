package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// CardProduct is a purchasable gift card denomination offered by a vendor.
type CardProduct struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID     uuid.UUID       `gorm:"column:vendor_id;type:uuid;not null;index"`
	Tier         enums.CardTier  `gorm:"column:tier;type:card_tier;not null"`
	Name         string          `gorm:"column:name;not null"`
	FaceValue    decimal.Decimal `gorm:"column:face_value;type:numeric(12,2);not null"`
	CurrencyCode string          `gorm:"column:currency_code;not null;default:'USD'"`
	Active       bool            `gorm:"column:active;not null;default:true"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
