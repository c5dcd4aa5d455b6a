package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// VendorAccount is a vendor storefront created through the onboarding wizard,
// optionally belonging to a corporate parent. Sections flagged as
// use_corporate_info are read from the corporate record instead of the
// columns here.
type VendorAccount struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CorporateID *uuid.UUID          `gorm:"column:corporate_id;type:uuid;index"`
	CreatedBy   uuid.UUID           `gorm:"column:created_by;type:uuid;not null"`
	Name        *string             `gorm:"column:name"`
	Status      enums.AccountStatus `gorm:"column:status;type:account_status;not null;default:'pending'"`

	NameFromCorporate     bool `gorm:"column:name_from_corporate;not null;default:false"`
	ProfileFromCorporate  bool `gorm:"column:profile_from_corporate;not null;default:false"`
	BusinessFromCorporate bool `gorm:"column:business_from_corporate;not null;default:false"`
	DocsFromCorporate     bool `gorm:"column:docs_from_corporate;not null;default:false"`

	FirstName        *string    `gorm:"column:first_name"`
	LastName         *string    `gorm:"column:last_name"`
	DateOfBirth      *time.Time `gorm:"column:date_of_birth"`
	StreetAddress    *string    `gorm:"column:street_address"`
	IDType           *string    `gorm:"column:id_type"`
	IDNumber         *string    `gorm:"column:id_number"`
	Phone            *string    `gorm:"column:phone"`
	PhoneCountryCode *string    `gorm:"column:phone_country_code"`
	Email            *string    `gorm:"column:email"`
	FrontIDKey       *string    `gorm:"column:front_id_key"`
	BackIDKey        *string    `gorm:"column:back_id_key"`
	LogoKey          *string    `gorm:"column:logo_key"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
