package onboarding

import (
	"testing"

	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/types"
)

func validProfileDetails() PersonalDetails {
	return PersonalDetails{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		DateOfBirth:   "1990-12-10",
		StreetAddress: "1 Analytical Way",
		IDType:        "passport",
		IDNumber:      "P1234567",
		Phone:         "+15551234567",
		Email:         "ada@example.com",
	}
}

func TestAdvanceNameStepRequiresVendorName(t *testing.T) {
	t.Parallel()

	form := NewFormState()
	step, fieldErrs, err := Advance(form, EventNext)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if fieldErrs == nil || fieldErrs["vendor_name"] == "" {
		t.Fatalf("expected vendor_name error, got %v", fieldErrs)
	}
	if step != enums.WizardStepName {
		t.Fatalf("step must not advance on validation failure, got %s", step)
	}
}

func TestAdvanceNameStepAutoPassesWhenShared(t *testing.T) {
	t.Parallel()

	form := NewFormState()
	form.UseCorporateInfo = true
	step, fieldErrs, err := Advance(form, EventNext)
	if err != nil || fieldErrs != nil {
		t.Fatalf("expected clean advance, got errs=%v err=%v", fieldErrs, err)
	}
	if step != enums.WizardStepProfile {
		t.Fatalf("expected profile step, got %s", step)
	}
}

func TestAdvanceProfileStepRequiresFrontID(t *testing.T) {
	t.Parallel()

	form := NewFormState()
	form.VendorName = "Ada's Cards"
	if _, _, err := Advance(form, EventNext); err != nil {
		t.Fatalf("advance to profile: %v", err)
	}

	form.PersonalDetails = validProfileDetails()
	_, fieldErrs, err := Advance(form, EventNext)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if fieldErrs == nil || fieldErrs["front_id"] == "" {
		t.Fatalf("expected front_id error, got %v", fieldErrs)
	}

	// back of ID is never required
	form.IdentityDocuments.Front = types.FileRef{RemoteKey: "documents/x/front"}
	_, fieldErrs, err = Advance(form, EventNext)
	if err != nil || fieldErrs != nil {
		t.Fatalf("expected clean advance with front only, got errs=%v err=%v", fieldErrs, err)
	}
	if form.Step != enums.WizardStepDetails {
		t.Fatalf("expected details step, got %s", form.Step)
	}
}

func TestAdvanceProfileStepSkipsFrontIDWhenShared(t *testing.T) {
	t.Parallel()

	form := NewFormState()
	form.UseCorporateInfo = true
	form.ProfileSameAsCorporate = true
	if _, _, err := Advance(form, EventNext); err != nil {
		t.Fatalf("advance to profile: %v", err)
	}

	form.PersonalDetails = validProfileDetails()
	_, fieldErrs, err := Advance(form, EventNext)
	if err != nil || fieldErrs != nil {
		t.Fatalf("expected clean advance without front id, got errs=%v err=%v", fieldErrs, err)
	}
}

func TestAdvanceValidatesOnlyCurrentStep(t *testing.T) {
	t.Parallel()

	// name step must pass even with an empty profile section
	form := NewFormState()
	form.VendorName = "Ada's Cards"
	_, fieldErrs, err := Advance(form, EventNext)
	if err != nil || fieldErrs != nil {
		t.Fatalf("name step must not validate profile fields, got errs=%v err=%v", fieldErrs, err)
	}
}

func TestBackwardNavigationNeverValidates(t *testing.T) {
	t.Parallel()

	form := NewFormState()
	form.Step = enums.WizardStepDetails
	step, fieldErrs, err := Advance(form, EventBack)
	if err != nil || fieldErrs != nil {
		t.Fatalf("backward move must not validate, got errs=%v err=%v", fieldErrs, err)
	}
	if step != enums.WizardStepProfile {
		t.Fatalf("expected profile step, got %s", step)
	}

	step, fieldErrs, err = Advance(form, EventBack)
	if err != nil || fieldErrs != nil {
		t.Fatalf("backward move must not validate, got errs=%v err=%v", fieldErrs, err)
	}
	if step != enums.WizardStepName {
		t.Fatalf("expected name step, got %s", step)
	}
}

func TestIllegalTransitionsAreRejected(t *testing.T) {
	t.Parallel()

	form := NewFormState()
	_, _, err := Advance(form, EventBack)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict going back from first step, got %v", err)
	}

	form.Step = enums.WizardStepDetails
	_, _, err = Advance(form, EventNext)
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict going next from final step, got %v", err)
	}
}

func TestAdvanceIsIdempotentPerStep(t *testing.T) {
	t.Parallel()

	// two identical advances from the same starting state land on the same
	// step; no transition performs I/O
	makeForm := func() *FormState {
		form := NewFormState()
		form.VendorName = "Ada's Cards"
		return form
	}

	first := makeForm()
	second := makeForm()
	stepA, _, errA := Advance(first, EventNext)
	stepB, _, errB := Advance(second, EventNext)
	if errA != nil || errB != nil {
		t.Fatalf("advance errors: %v %v", errA, errB)
	}
	if stepA != stepB {
		t.Fatalf("identical input produced different steps: %s vs %s", stepA, stepB)
	}
}

func TestDeriveCountryCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in           string
		wantCode     string
		wantNational string
	}{
		{"+15551234567", "+1", "5551234567"},
		{"+447911123456", "+44", "7911123456"},
		{"+2348012345678", "+234", "8012345678"},
		{"+18765551234", "+1876", "5551234"},
		{"5551234567", "+1", "5551234567"},
		{"", "+1", ""},
		{"+999123", "+1", "+999123"},
	}
	for _, tc := range cases {
		code, national := DeriveCountryCode(tc.in)
		if code != tc.wantCode || national != tc.wantNational {
			t.Fatalf("DeriveCountryCode(%q) = (%q, %q), want (%q, %q)", tc.in, code, national, tc.wantCode, tc.wantNational)
		}
	}
}
