package enums

import "fmt"

// ProfileKind is the account context a multi-role user operates as.
type ProfileKind string

const (
	ProfileKindVendor    ProfileKind = "vendor"
	ProfileKindCorporate ProfileKind = "corporate"
)

var validProfileKinds = []ProfileKind{
	ProfileKindVendor,
	ProfileKindCorporate,
}

// String implements fmt.Stringer.
func (p ProfileKind) String() string {
	return string(p)
}

// IsValid reports whether the value matches the canonical profile kind enum.
func (p ProfileKind) IsValid() bool {
	for _, candidate := range validProfileKinds {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProfileKind converts the raw string to ProfileKind.
func ParseProfileKind(value string) (ProfileKind, error) {
	for _, candidate := range validProfileKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid profile kind %q", value)
}
