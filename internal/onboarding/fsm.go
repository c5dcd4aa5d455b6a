package onboarding

import (
	"strings"

	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/types"
)

// Event is a wizard navigation input.
type Event string

const (
	EventNext Event = "next"
	EventBack Event = "back"
)

// ValidationErrors maps field names to human-readable problems for the
// current step only.
type ValidationErrors map[string]string

// stepGuard validates the field subset owned by the step it guards. A nil
// guard passes unconditionally.
type stepGuard func(form *FormState) ValidationErrors

type transition struct {
	to    enums.WizardStep
	guard stepGuard
}

// transitions is the state x event table. Absent entries are illegal moves;
// backward transitions carry no guard.
var transitions = map[enums.WizardStep]map[Event]transition{
	enums.WizardStepName: {
		EventNext: {to: enums.WizardStepProfile, guard: validateNameStep},
	},
	enums.WizardStepProfile: {
		EventNext: {to: enums.WizardStepDetails, guard: validateProfileStep},
		EventBack: {to: enums.WizardStepName},
	},
	enums.WizardStepDetails: {
		EventBack: {to: enums.WizardStepProfile},
	},
}

// Advance applies an event to the form's current step. Forward moves validate
// only the current step's fields; backward moves never validate. The form's
// step pointer is updated in place on success. No I/O happens here, so
// repeating a successful call from the same step is harmless.
func Advance(form *FormState, event Event) (enums.WizardStep, ValidationErrors, error) {
	if form == nil {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "form state is required")
	}
	if !form.Step.IsValid() {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown wizard step")
	}

	row, ok := transitions[form.Step]
	if !ok {
		return "", nil, pkgerrors.New(pkgerrors.CodeStateConflict, "no transitions from step").
			WithDetails(map[string]any{"step": form.Step.String()})
	}
	tr, ok := row[event]
	if !ok {
		return "", nil, pkgerrors.New(pkgerrors.CodeStateConflict, "illegal wizard transition").
			WithDetails(map[string]any{"step": form.Step.String(), "event": string(event)})
	}

	if tr.guard != nil {
		if errs := tr.guard(form); len(errs) > 0 {
			return form.Step, errs, nil
		}
	}

	form.Step = tr.to
	return tr.to, nil, nil
}

func validateNameStep(form *FormState) ValidationErrors {
	// the shared-name shortcut auto-passes this step
	if form.UseCorporateInfo {
		return nil
	}
	if strings.TrimSpace(form.VendorName) == "" {
		return ValidationErrors{"vendor_name": "is required"}
	}
	return nil
}

func validateDetailsStep(form *FormState) ValidationErrors {
	// the shared-details shortcut reuses the corporate record wholesale
	if form.BusinessDetailsSameAsCorporate {
		return nil
	}

	errs := ValidationErrors{}

	// every required document needs a pending file or a remote key; articles
	// of incorporation stays optional
	requiredDocs := map[string]types.FileRef{
		"logo":                         form.BusinessDocuments.Logo,
		"certificate_of_incorporation": form.BusinessDocuments.CertOfIncorp,
		"business_license":             form.BusinessDocuments.BusinessLicense,
		"utility_bill":                 form.BusinessDocuments.UtilityBill,
	}
	for field, ref := range requiredDocs {
		if !ref.IsSet() {
			errs[field] = "is required"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateForSubmission re-runs the step guards against the final form.
// Clients hand the server a complete FormState, so the per-step guards alone
// guarantee nothing. Sections shared from the corporate record are satisfied
// by that record and skip their guard entirely.
func validateForSubmission(form *FormState) ValidationErrors {
	errs := ValidationErrors{}
	merge := func(guardErrs ValidationErrors) {
		for field, problem := range guardErrs {
			errs[field] = problem
		}
	}

	merge(validateNameStep(form))
	if !form.ProfileSameAsCorporate {
		merge(validateProfileStep(form))
	}
	merge(validateDetailsStep(form))

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateProfileStep(form *FormState) ValidationErrors {
	errs := ValidationErrors{}

	required := map[string]string{
		"first_name":     form.PersonalDetails.FirstName,
		"last_name":      form.PersonalDetails.LastName,
		"dob":            form.PersonalDetails.DateOfBirth,
		"street_address": form.PersonalDetails.StreetAddress,
		"id_type":        form.PersonalDetails.IDType,
		"id_number":      form.PersonalDetails.IDNumber,
		"phone":          form.PersonalDetails.Phone,
		"email":          form.PersonalDetails.Email,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = "is required"
		}
	}

	// front of ID is mandatory unless the profile is shared; back never is
	if !form.ProfileSameAsCorporate && !form.IdentityDocuments.Front.IsSet() {
		errs["front_id"] = "is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
