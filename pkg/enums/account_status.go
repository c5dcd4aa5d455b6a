package enums

import "fmt"

// AccountStatus tracks the review state of an account.
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusApproved AccountStatus = "approved"
	AccountStatusVerified AccountStatus = "verified"
	AccountStatusRejected AccountStatus = "rejected"
)

var validAccountStatuses = []AccountStatus{
	AccountStatusPending,
	AccountStatusActive,
	AccountStatusApproved,
	AccountStatusVerified,
	AccountStatusRejected,
}

// String implements fmt.Stringer.
func (a AccountStatus) String() string {
	return string(a)
}

// IsValid reports whether the value matches the canonical account status enum.
func (a AccountStatus) IsValid() bool {
	for _, candidate := range validAccountStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// IsApproved reports whether the account has cleared review. Only approved and
// verified count; active is a login state, not a review outcome.
func (a AccountStatus) IsApproved() bool {
	return a == AccountStatusApproved || a == AccountStatusVerified
}

// ParseAccountStatus converts the raw string to AccountStatus.
func ParseAccountStatus(value string) (AccountStatus, error) {
	for _, candidate := range validAccountStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid account status %q", value)
}
