package onboarding

import (
	"regexp"
	"strings"
)

// DefaultCountryCode is used when the phone number carries no recognizable
// prefix.
const DefaultCountryCode = "+1"

var phonePrefixRe = regexp.MustCompile(`^\+(\d{1,3})`)

// dialing codes the platform currently operates in, longest first so +1876
// style codes win over their +1 prefix
var knownCountryCodes = []string{
	"+1876", // Jamaica
	"+1868", // Trinidad and Tobago
	"+1246", // Barbados
	"+44",   // United Kingdom
	"+49",   // Germany
	"+33",   // France
	"+234",  // Nigeria
	"+233",  // Ghana
	"+254",  // Kenya
	"+27",   // South Africa
	"+91",   // India
	"+1",    // US / Canada
}

// DeriveCountryCode extracts the dialing code from a leading +digits prefix,
// matched against the known country list. Returns the code and the remaining
// national number. Unrecognized or absent prefixes fall back to the default
// with the input untouched.
func DeriveCountryCode(phone string) (code string, national string) {
	trimmed := strings.TrimSpace(phone)
	if !phonePrefixRe.MatchString(trimmed) {
		return DefaultCountryCode, trimmed
	}
	for _, candidate := range knownCountryCodes {
		if strings.HasPrefix(trimmed, candidate) {
			return candidate, strings.TrimSpace(strings.TrimPrefix(trimmed, candidate))
		}
	}
	return DefaultCountryCode, trimmed
}
