package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// User represents the canonical identity entity. The backend treats it as a
// read-only projection of the auth service's record.
type User struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email       string              `gorm:"column:email;type:text;not null;uniqueIndex"`
	DisplayName string              `gorm:"column:display_name;not null"`
	Phone       *string             `gorm:"column:phone"`
	UserType    enums.UserType      `gorm:"column:user_type;type:user_type;not null"`
	Status      enums.AccountStatus `gorm:"column:status;type:account_status;not null;default:'pending'"`
	CorporateID *uuid.UUID          `gorm:"column:corporate_id;type:uuid"`
	LastLoginAt *time.Time          `gorm:"column:last_login_at"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
