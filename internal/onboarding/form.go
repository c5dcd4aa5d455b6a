package onboarding

import (
	"github.com/giftdash/giftdash-backend/pkg/enums"
	"github.com/giftdash/giftdash-backend/pkg/types"
)

// PersonalDetails is the profile-step field set.
type PersonalDetails struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateOfBirth   string `json:"dob"`
	StreetAddress string `json:"street_address"`
	IDType        string `json:"id_type"`
	IDNumber      string `json:"id_number"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

// BusinessDetails is the details-step field set.
type BusinessDetails struct {
	BusinessName       string `json:"business_name"`
	RegistrationNumber string `json:"registration_number"`
	StreetAddress      string `json:"street_address"`
	City               string `json:"city"`
	Country            string `json:"country"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Website            string `json:"website"`
}

// IdentityDocuments holds the per-side ID scans. Only the front is ever
// required.
type IdentityDocuments struct {
	Front types.FileRef `json:"front"`
	Back  types.FileRef `json:"back"`
}

// BusinessDocuments holds the details-step document set. Articles of
// incorporation is optional.
type BusinessDocuments struct {
	Logo            types.FileRef `json:"logo"`
	CertOfIncorp    types.FileRef `json:"certificate_of_incorporation"`
	BusinessLicense types.FileRef `json:"business_license"`
	ArticlesIncorp  types.FileRef `json:"articles_of_incorporation"`
	UtilityBill     types.FileRef `json:"utility_bill"`
}

// FormState is the wizard's single working record, accumulated across steps.
type FormState struct {
	Step enums.WizardStep `json:"step"`

	VendorName                     string `json:"vendor_name"`
	UseCorporateInfo               bool   `json:"use_corporate_info"`
	ProfileSameAsCorporate         bool   `json:"profile_same_as_corporate"`
	BusinessDetailsSameAsCorporate bool   `json:"business_details_same_as_corporate"`

	PersonalDetails   PersonalDetails   `json:"personal_details"`
	IdentityDocuments IdentityDocuments `json:"identity_documents"`
	BusinessDetails   BusinessDetails   `json:"business_details"`
	BusinessDocuments BusinessDocuments `json:"business_documents"`
}

// NewFormState returns an empty form positioned at the entry step.
func NewFormState() *FormState {
	return &FormState{Step: enums.FirstWizardStep()}
}

// Reset clears all accumulated state and returns the pointer to the first
// step.
func (f *FormState) Reset() {
	*f = *NewFormState()
}

// FullyShared reports whether every section reuses the corporate record.
func (f *FormState) FullyShared() bool {
	return f.UseCorporateInfo && f.ProfileSameAsCorporate && f.BusinessDetailsSameAsCorporate
}
