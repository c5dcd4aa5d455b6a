package enums

import "fmt"

// UserType is the canonical account type carried on a user identity.
type UserType string

const (
	UserTypeUser                UserType = "user"
	UserTypeVendor              UserType = "vendor"
	UserTypeCorporate           UserType = "corporate"
	UserTypeCorporateVendor     UserType = "corporate_vendor"
	UserTypeCorporateAdmin      UserType = "corporate_admin"
	UserTypeCorporateSuperAdmin UserType = "corporate_super_admin"
	UserTypeBranch              UserType = "branch"
)

var validUserTypes = []UserType{
	UserTypeUser,
	UserTypeVendor,
	UserTypeCorporate,
	UserTypeCorporateVendor,
	UserTypeCorporateAdmin,
	UserTypeCorporateSuperAdmin,
	UserTypeBranch,
}

// String implements fmt.Stringer.
func (u UserType) String() string {
	return string(u)
}

// IsValid reports whether the value matches the canonical user type enum.
func (u UserType) IsValid() bool {
	for _, candidate := range validUserTypes {
		if candidate == u {
			return true
		}
	}
	return false
}

// CanSwitchProfile reports whether this user type can operate under more than
// one account context. Plain users, corporate admins and branch managers have
// a fixed context.
func (u UserType) CanSwitchProfile() bool {
	switch u {
	case UserTypeVendor, UserTypeCorporate, UserTypeCorporateVendor:
		return true
	}
	return false
}

// ParseUserType converts the raw string to UserType.
func ParseUserType(value string) (UserType, error) {
	for _, candidate := range validUserTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user type %q", value)
}
