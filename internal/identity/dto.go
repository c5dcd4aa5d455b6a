package identity

import (
	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// Identity is the read-only view of a user handed to other services.
type Identity struct {
	ID          uuid.UUID           `json:"id"`
	DisplayName string              `json:"display_name"`
	Email       string              `json:"email"`
	Phone       *string             `json:"phone,omitempty"`
	UserType    enums.UserType      `json:"user_type"`
	Status      enums.AccountStatus `json:"status"`
	CorporateID *uuid.UUID          `json:"corporate_id,omitempty"`
}
