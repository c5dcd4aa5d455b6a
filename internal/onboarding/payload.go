package onboarding

// Each submission section either carries the full data set or a bare
// use_corporate_info marker telling the backend to read from the corporate
// parent record.

// VendorNameSection names the new vendor account.
type VendorNameSection struct {
	UseCorporateInfo bool   `json:"use_corporate_info,omitempty"`
	Name             string `json:"name,omitempty"`
}

// PersonalSection carries the owner's personal details and ID document keys.
type PersonalSection struct {
	UseCorporateInfo bool   `json:"use_corporate_info,omitempty"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	DateOfBirth      string `json:"dob,omitempty"`
	StreetAddress    string `json:"street_address,omitempty"`
	IDType           string `json:"id_type,omitempty"`
	IDNumber         string `json:"id_number,omitempty"`
	Phone            string `json:"phone,omitempty"`
	PhoneCountryCode string `json:"phone_country_code,omitempty"`
	Email            string `json:"email,omitempty"`
	FrontIDKey       string `json:"front_id_key,omitempty"`
	BackIDKey        string `json:"back_id_key,omitempty"`
}

// BusinessDetailsSection carries the registered business information.
type BusinessDetailsSection struct {
	UseCorporateInfo   bool   `json:"use_corporate_info,omitempty"`
	BusinessName       string `json:"business_name,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	StreetAddress      string `json:"street_address,omitempty"`
	City               string `json:"city,omitempty"`
	Country            string `json:"country,omitempty"`
	Phone              string `json:"phone,omitempty"`
	PhoneCountryCode   string `json:"phone_country_code,omitempty"`
	Email              string `json:"email,omitempty"`
	Website            string `json:"website,omitempty"`
}

// BusinessDocumentsSection carries the stored document keys.
type BusinessDocumentsSection struct {
	UseCorporateInfo   bool   `json:"use_corporate_info,omitempty"`
	LogoKey            string `json:"logo_key,omitempty"`
	CertOfIncorpKey    string `json:"certificate_of_incorporation_key,omitempty"`
	BusinessLicenseKey string `json:"business_license_key,omitempty"`
	ArticlesIncorpKey  string `json:"articles_of_incorporation_key,omitempty"`
	UtilityBillKey     string `json:"utility_bill_key,omitempty"`
}

// SubmissionPayload is the composite record assembled at the final step.
type SubmissionPayload struct {
	VendorName        VendorNameSection        `json:"vendor_name"`
	PersonalDetails   PersonalSection          `json:"personal_details"`
	BusinessDetails   BusinessDetailsSection   `json:"business_details"`
	BusinessDocuments BusinessDocumentsSection `json:"business_documents"`
}

// MarkerCount returns how many sections are bare corporate markers.
func (p *SubmissionPayload) MarkerCount() int {
	count := 0
	if p.VendorName.UseCorporateInfo {
		count++
	}
	if p.PersonalDetails.UseCorporateInfo {
		count++
	}
	if p.BusinessDetails.UseCorporateInfo {
		count++
	}
	if p.BusinessDocuments.UseCorporateInfo {
		count++
	}
	return count
}
