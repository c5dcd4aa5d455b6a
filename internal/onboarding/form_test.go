package onboarding

import (
	"encoding/json"
	"testing"

	"github.com/giftdash/giftdash-backend/pkg/types"
)

func TestFormStateSerializationRoundTripsFileBytes(t *testing.T) {
	t.Parallel()

	form := NewFormState()
	form.VendorName = "Ser Cards"
	form.BusinessDocuments.UtilityBill = types.FileRef{Pending: &types.PendingFile{
		FileName:  "bill.pdf",
		MimeType:  "application/pdf",
		SizeBytes: 3,
		Content:   []byte{1, 2, 3},
	}}

	raw, err := json.Marshal(form)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored FormState
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	bill := restored.BusinessDocuments.UtilityBill.Pending
	if bill == nil {
		t.Fatal("pending file lost")
	}
	if bill.FileName != "bill.pdf" || bill.SizeBytes != 3 {
		t.Fatalf("metadata changed: %+v", bill)
	}
	if len(bill.Content) != 3 || bill.Content[2] != 3 {
		t.Fatalf("content changed: %v", bill.Content)
	}
	if restored.Step != form.Step {
		t.Fatalf("step changed: %s", restored.Step)
	}
}

func TestResetReturnsToFirstStep(t *testing.T) {
	t.Parallel()

	form := detailsStepForm()
	form.VendorName = "X"
	form.UseCorporateInfo = true
	form.Reset()

	if form.Step != NewFormState().Step {
		t.Fatalf("expected first step after reset, got %s", form.Step)
	}
	if form.VendorName != "" || form.UseCorporateInfo {
		t.Fatalf("expected cleared state, got %+v", form)
	}
}
