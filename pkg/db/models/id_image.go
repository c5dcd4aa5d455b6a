package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// IDImage is an identity document scan (front or back) tied to a user.
type IDImage struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID   uuid.UUID          `gorm:"column:owner_id;type:uuid;not null;index"`
	Kind      enums.DocumentKind `gorm:"column:kind;type:document_kind;not null"`
	FileKey   string             `gorm:"column:file_key;not null;unique"`
	FileName  string             `gorm:"column:file_name;not null"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
}
