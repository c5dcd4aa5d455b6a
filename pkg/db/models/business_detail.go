package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessDetail holds the registered business information attached to a
// corporate user or vendor account.
type BusinessDetail struct {
	ID                 uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID            uuid.UUID  `gorm:"column:owner_id;type:uuid;not null;index"`
	BusinessName       string     `gorm:"column:business_name;not null"`
	RegistrationNumber *string    `gorm:"column:registration_number"`
	StreetAddress      string     `gorm:"column:street_address;not null"`
	City               *string    `gorm:"column:city"`
	Country            *string    `gorm:"column:country"`
	Phone              string     `gorm:"column:phone;not null"`
	PhoneCountryCode   string     `gorm:"column:phone_country_code;not null"`
	Email              string     `gorm:"column:email;not null"`
	Website            *string    `gorm:"column:website"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
