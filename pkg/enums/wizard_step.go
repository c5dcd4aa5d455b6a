package enums

import "fmt"

// WizardStep identifies a step of the vendor onboarding wizard. Steps have a
// strict linear order: name, profile, details.
type WizardStep string

const (
	WizardStepName    WizardStep = "name"
	WizardStepProfile WizardStep = "profile"
	WizardStepDetails WizardStep = "details"
)

var orderedWizardSteps = []WizardStep{
	WizardStepName,
	WizardStepProfile,
	WizardStepDetails,
}

// String implements fmt.Stringer.
func (w WizardStep) String() string {
	return string(w)
}

// IsValid reports whether the value matches the canonical wizard step enum.
func (w WizardStep) IsValid() bool {
	return w.Index() >= 0
}

// Index returns the step's position in the wizard order, or -1 when unknown.
func (w WizardStep) Index() int {
	for i, candidate := range orderedWizardSteps {
		if candidate == w {
			return i
		}
	}
	return -1
}

// FirstWizardStep returns the entry step of the wizard.
func FirstWizardStep() WizardStep {
	return orderedWizardSteps[0]
}

// LastWizardStep returns the final, submitting step of the wizard.
func LastWizardStep() WizardStep {
	return orderedWizardSteps[len(orderedWizardSteps)-1]
}

// ParseWizardStep converts the raw string to WizardStep.
func ParseWizardStep(value string) (WizardStep, error) {
	for _, candidate := range orderedWizardSteps {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid wizard step %q", value)
}
