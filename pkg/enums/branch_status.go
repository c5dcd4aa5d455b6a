package enums

import "fmt"

// BranchStatus tracks whether a branch is operating.
type BranchStatus string

const (
	BranchStatusActive   BranchStatus = "active"
	BranchStatusInactive BranchStatus = "inactive"
)

var validBranchStatuses = []BranchStatus{
	BranchStatusActive,
	BranchStatusInactive,
}

// IsValid reports whether the value matches the canonical branch status enum.
func (b BranchStatus) IsValid() bool {
	for _, candidate := range validBranchStatuses {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBranchStatus converts the raw string to BranchStatus.
func ParseBranchStatus(value string) (BranchStatus, error) {
	for _, candidate := range validBranchStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid branch status %q", value)
}
