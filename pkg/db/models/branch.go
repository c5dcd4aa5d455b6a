package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// Branch is a physical location under a vendor account, run by a branch
// manager.
type Branch struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VendorID  uuid.UUID          `gorm:"column:vendor_id;type:uuid;not null;index"`
	ManagerID *uuid.UUID         `gorm:"column:manager_id;type:uuid"`
	Name      string             `gorm:"column:name;not null"`
	Address   *string            `gorm:"column:address"`
	Phone     *string            `gorm:"column:phone"`
	Status    enums.BranchStatus `gorm:"column:status;type:branch_status;not null;default:'active'"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
