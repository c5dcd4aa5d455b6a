package enums

import "fmt"

// DocumentKind classifies an uploaded onboarding document.
type DocumentKind string

const (
	DocumentKindLogo             DocumentKind = "logo"
	DocumentKindFrontID          DocumentKind = "front_id"
	DocumentKindBackID           DocumentKind = "back_id"
	DocumentKindCertOfIncorp     DocumentKind = "certificate_of_incorporation"
	DocumentKindBusinessLicense  DocumentKind = "business_license"
	DocumentKindArticlesOfIncorp DocumentKind = "articles_of_incorporation"
	DocumentKindUtilityBill      DocumentKind = "utility_bill"
)

var validDocumentKinds = []DocumentKind{
	DocumentKindLogo,
	DocumentKindFrontID,
	DocumentKindBackID,
	DocumentKindCertOfIncorp,
	DocumentKindBusinessLicense,
	DocumentKindArticlesOfIncorp,
	DocumentKindUtilityBill,
}

// String implements fmt.Stringer.
func (d DocumentKind) String() string {
	return string(d)
}

// IsValid reports whether the value matches the canonical document kind enum.
func (d DocumentKind) IsValid() bool {
	for _, candidate := range validDocumentKinds {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDocumentKind converts the raw string to DocumentKind.
func ParseDocumentKind(value string) (DocumentKind, error) {
	for _, candidate := range validDocumentKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document kind %q", value)
}
