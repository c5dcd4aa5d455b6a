package enums

import "fmt"

// CardTier is the gift card product line a catalog entry belongs to.
type CardTier string

const (
	CardTierDashX    CardTier = "dashx"
	CardTierDashPro  CardTier = "dashpro"
	CardTierDashPass CardTier = "dashpass"
	CardTierDashGo   CardTier = "dashgo"
)

var validCardTiers = []CardTier{
	CardTierDashX,
	CardTierDashPro,
	CardTierDashPass,
	CardTierDashGo,
}

// String implements fmt.Stringer.
func (c CardTier) String() string {
	return string(c)
}

// IsValid reports whether the value matches the canonical card tier enum.
func (c CardTier) IsValid() bool {
	for _, candidate := range validCardTiers {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCardTier converts the raw string to CardTier.
func ParseCardTier(value string) (CardTier, error) {
	for _, candidate := range validCardTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid card tier %q", value)
}
