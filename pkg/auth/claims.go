package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID      uuid.UUID
	UserType    enums.UserType
	DisplayName string
	Status      enums.AccountStatus
	JTI         string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID      uuid.UUID           `json:"user_id"`
	UserType    enums.UserType      `json:"user_type"`
	DisplayName string              `json:"display_name,omitempty"`
	Status      enums.AccountStatus `json:"status"`
	jwt.RegisteredClaims
}
