package profiles

import (
	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// ProfileSource records which input decided the active profile.
type ProfileSource string

const (
	ProfileSourceURL     ProfileSource = "url"
	ProfileSourceStored  ProfileSource = "storage"
	ProfileSourceDefault ProfileSource = "user_type_default"
)

// ActiveProfile is the resolved account context for a multi-role user.
type ActiveProfile struct {
	Kind   enums.ProfileKind `json:"kind"`
	Source ProfileSource     `json:"source"`
}

// ResolveActiveProfile picks the account context from the three inputs, first
// match wins: url parameter, persisted preference, then the default implied by
// the user type. Non-switchable user types resolve to nil. Unrecognized
// values are treated as absent, never as errors.
func ResolveActiveProfile(userType enums.UserType, urlParam, persisted string) *ActiveProfile {
	if !userType.CanSwitchProfile() {
		return nil
	}

	if kind, err := enums.ParseProfileKind(urlParam); err == nil {
		return &ActiveProfile{Kind: kind, Source: ProfileSourceURL}
	}

	if kind, err := enums.ParseProfileKind(persisted); err == nil {
		return &ActiveProfile{Kind: kind, Source: ProfileSourceStored}
	}

	return &ActiveProfile{Kind: defaultProfileKind(userType), Source: ProfileSourceDefault}
}

func defaultProfileKind(userType enums.UserType) enums.ProfileKind {
	switch userType {
	case enums.UserTypeCorporate:
		return enums.ProfileKindCorporate
	default:
		// vendor and corporate_vendor both land on the vendor context
		return enums.ProfileKindVendor
	}
}
