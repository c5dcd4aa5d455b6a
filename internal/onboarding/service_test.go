package onboarding

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/internal/corporate"
	"github.com/giftdash/giftdash-backend/internal/documents"
	"github.com/giftdash/giftdash-backend/pkg/db/models"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/types"
)

type stubCorporate struct {
	record *corporate.Record
	err    error
}

func (s *stubCorporate) FindRecordByID(context.Context, uuid.UUID) (*corporate.Record, error) {
	return s.record, s.err
}

type stubUploader struct {
	mu    sync.Mutex
	calls []enums.DocumentKind
	err   error
}

func (s *stubUploader) Upload(_ context.Context, _ uuid.UUID, kind enums.DocumentKind, file *types.PendingFile) (*documents.UploadOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.calls = append(s.calls, kind)
	return &documents.UploadOutput{
		FileKey:  "documents/uploaded/" + kind.String(),
		FileName: file.FileName,
	}, nil
}

func (s *stubUploader) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type stubVendors struct {
	created *models.VendorAccount
	err     error
}

func (s *stubVendors) Create(_ context.Context, account *models.VendorAccount) error {
	if s.err != nil {
		return s.err
	}
	s.created = account
	return nil
}

type memoryDraftStore struct {
	drafts map[string]*FormState
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: map[string]*FormState{}}
}

func (m *memoryDraftStore) SaveDraft(_ context.Context, userID string, form *FormState) error {
	copied := *form
	m.drafts[userID] = &copied
	return nil
}

func (m *memoryDraftStore) LoadDraft(_ context.Context, userID string) (*FormState, error) {
	form, ok := m.drafts[userID]
	if !ok {
		return nil, nil
	}
	copied := *form
	return &copied, nil
}

func (m *memoryDraftStore) ClearDraft(_ context.Context, userID string) error {
	delete(m.drafts, userID)
	return nil
}

type stubCache struct {
	invalidated []string
}

func (s *stubCache) CacheKey(collection string, parts ...string) string {
	key := "gd:cache:" + collection
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func (s *stubCache) InvalidateCollections(_ context.Context, keys ...string) error {
	s.invalidated = append(s.invalidated, keys...)
	return nil
}

type serviceFixture struct {
	svc       *Service
	corporate *stubCorporate
	uploader  *stubUploader
	vendors   *stubVendors
	drafts    *memoryDraftStore
	cache     *stubCache
}

func newFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		corporate: &stubCorporate{},
		uploader:  &stubUploader{},
		vendors:   &stubVendors{},
		drafts:    newMemoryDraftStore(),
		cache:     &stubCache{},
	}
	svc, err := NewService(ServiceParams{
		Corporate: f.corporate,
		Documents: f.uploader,
		Vendors:   f.vendors,
		Drafts:    f.drafts,
		Cache:     f.cache,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	f.svc = svc
	return f
}

func corporateFixtureRecord(corporateID uuid.UUID) *corporate.Record {
	phone := "+15550001111"
	city := "Kingston"
	country := "JM"
	return &corporate.Record{
		User: models.User{
			ID:          corporateID,
			DisplayName: "Grace Hopper",
			Email:       "grace@corp.example",
			Phone:       &phone,
			UserType:    enums.UserTypeCorporate,
			Status:      enums.AccountStatusApproved,
		},
		BusinessDetails: []models.BusinessDetail{{
			OwnerID:          corporateID,
			BusinessName:     "Hopper Holdings",
			StreetAddress:    "7 Harbour St",
			City:             &city,
			Country:          &country,
			Phone:            "5550001111",
			PhoneCountryCode: "+1",
			Email:            "biz@corp.example",
		}},
		BusinessDocuments: []models.BusinessDocument{
			{OwnerID: corporateID, Kind: enums.DocumentKindLogo, FileKey: "documents/corp/logo", FileName: "logo.png", MimeType: "image/png", SizeBytes: 10},
			{OwnerID: corporateID, Kind: enums.DocumentKindBusinessLicense, FileKey: "documents/corp/license", FileName: "license.pdf", MimeType: "application/pdf", SizeBytes: 10},
		},
		IDImages: []models.IDImage{
			{OwnerID: corporateID, Kind: enums.DocumentKindFrontID, FileKey: "documents/corp/front", FileName: "front.png"},
			{OwnerID: corporateID, Kind: enums.DocumentKindBackID, FileKey: "documents/corp/back", FileName: "back.png"},
		},
	}
}

func detailsStepForm() *FormState {
	form := NewFormState()
	form.Step = enums.WizardStepDetails
	return form
}

func TestSubmitFullySharedSendsFourMarkersAndNoUploads(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	corporateID := uuid.New()

	form := detailsStepForm()
	form.UseCorporateInfo = true
	form.ProfileSameAsCorporate = true
	form.BusinessDetailsSameAsCorporate = true

	result, err := f.svc.Submit(context.Background(), uuid.New(), &corporateID, form)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := result.Payload.MarkerCount(); got != 4 {
		t.Fatalf("expected exactly 4 corporate markers, got %d", got)
	}
	if f.uploader.callCount() != 0 {
		t.Fatalf("fully shared submission must not upload, got %d calls", f.uploader.callCount())
	}
	// markers only, no copied data rides along
	if result.Payload.PersonalDetails.FrontIDKey != "" || result.Payload.BusinessDetails.BusinessName != "" {
		t.Fatalf("fully shared payload must be bare markers: %+v", result.Payload)
	}
	if form.Step != enums.FirstWizardStep() {
		t.Fatal("wizard state must reset after success")
	}
}

func TestSubmitPartialSharedCopiesWithoutCrossContamination(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	corporateID := uuid.New()
	f.corporate.record = corporateFixtureRecord(corporateID)

	form := detailsStepForm()
	form.VendorName = "Fresh Cards Ltd"
	form.ProfileSameAsCorporate = true
	form.BusinessDetails = BusinessDetails{
		BusinessName:  "Fresh Cards Ltd",
		StreetAddress: "99 New Rd",
		Phone:         "+447911123456",
		Email:         "ops@freshcards.example",
	}
	form.BusinessDocuments.Logo = types.FileRef{Pending: &types.PendingFile{FileName: "logo.png", Content: []byte{1, 2}}}
	form.BusinessDocuments.BusinessLicense = types.FileRef{Pending: &types.PendingFile{FileName: "license.pdf", Content: []byte{3, 4}}}
	form.BusinessDocuments.CertOfIncorp = types.FileRef{Pending: &types.PendingFile{FileName: "cert.pdf", Content: []byte{5, 6}}}
	form.BusinessDocuments.UtilityBill = types.FileRef{Pending: &types.PendingFile{FileName: "bill.pdf", Content: []byte{7, 8}}}

	result, err := f.svc.Submit(context.Background(), uuid.New(), &corporateID, form)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	personal := result.Payload.PersonalDetails
	if !personal.UseCorporateInfo {
		t.Fatal("personal section must be marked as corporate-sourced")
	}
	if personal.FrontIDKey != "documents/corp/front" || personal.BackIDKey != "documents/corp/back" {
		t.Fatalf("personal section must reuse corporate id image keys, got %+v", personal)
	}

	business := result.Payload.BusinessDetails
	if business.UseCorporateInfo {
		t.Fatal("business section must not be corporate-sourced")
	}
	if business.BusinessName != "Fresh Cards Ltd" {
		t.Fatalf("business details contaminated by corporate record: %+v", business)
	}
	if business.PhoneCountryCode != "+44" || business.Phone != "7911123456" {
		t.Fatalf("expected derived uk country code, got %+v", business)
	}

	docs := result.Payload.BusinessDocuments
	if docs.LogoKey != "documents/uploaded/logo" || docs.BusinessLicenseKey != "documents/uploaded/business_license" {
		t.Fatalf("owned documents must come from fresh uploads, got %+v", docs)
	}
	if docs.LogoKey == f.corporate.record.DocumentKey(enums.DocumentKindLogo) {
		t.Fatal("owned section must not reuse corporate document keys")
	}

	// only the owned business documents were uploaded
	if f.uploader.callCount() != 4 {
		t.Fatalf("expected 4 uploads, got %d", f.uploader.callCount())
	}
}

func TestSubmitUploadFailureIsAllOrNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.uploader.err = errors.New("bucket unavailable")

	form := detailsStepForm()
	form.VendorName = "Fresh Cards Ltd"
	form.PersonalDetails = validProfileDetails()
	form.IdentityDocuments.Front = types.FileRef{Pending: &types.PendingFile{FileName: "front.png", Content: []byte{1}}}
	form.BusinessDocuments.Logo = types.FileRef{Pending: &types.PendingFile{FileName: "logo.png", Content: []byte{2}}}
	form.BusinessDocuments.CertOfIncorp = types.FileRef{Pending: &types.PendingFile{FileName: "cert.pdf", Content: []byte{3}}}
	form.BusinessDocuments.BusinessLicense = types.FileRef{Pending: &types.PendingFile{FileName: "license.pdf", Content: []byte{4}}}
	form.BusinessDocuments.UtilityBill = types.FileRef{Pending: &types.PendingFile{FileName: "bill.pdf", Content: []byte{5}}}

	_, err := f.svc.Submit(context.Background(), uuid.New(), nil, form)
	if err == nil {
		t.Fatal("expected submission failure")
	}
	if f.vendors.created != nil {
		t.Fatal("no vendor account may be created when uploads fail")
	}
	// form stays intact for retry
	if form.Step != enums.WizardStepDetails || form.VendorName != "Fresh Cards Ltd" {
		t.Fatalf("form state must survive a failed submission: %+v", form)
	}
}

func TestSubmitSharedSectionsRequireCorporateID(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	form := detailsStepForm()
	form.ProfileSameAsCorporate = true

	_, err := f.svc.Submit(context.Background(), uuid.New(), nil, form)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error without corporate id, got %v", err)
	}
}

func TestSubmitRejectsNonFinalStep(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	form := NewFormState()

	_, err := f.svc.Submit(context.Background(), uuid.New(), nil, form)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestSubmitRejectsIncompleteForm(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	// an empty form jumped straight to the final step must not create anything
	form := detailsStepForm()

	_, err := f.svc.Submit(context.Background(), uuid.New(), nil, form)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty form, got %v", err)
	}
	if f.vendors.created != nil {
		t.Fatal("no vendor account may be created for an incomplete form")
	}
	if f.uploader.callCount() != 0 {
		t.Fatalf("nothing may be uploaded for an incomplete form, got %d calls", f.uploader.callCount())
	}

	details, ok := typed.Details().(ValidationErrors)
	if !ok {
		t.Fatalf("expected field errors, got %#v", typed.Details())
	}
	for _, field := range []string{"vendor_name", "first_name", "front_id", "logo", "certificate_of_incorporation", "business_license", "utility_bill"} {
		if _, present := details[field]; !present {
			t.Fatalf("expected %s to be reported missing, got %v", field, details)
		}
	}
}

func TestSubmitRequiresDocumentRefsOnOwnedPath(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	corporateID := uuid.New()
	f.corporate.record = corporateFixtureRecord(corporateID)

	// shared name and profile, owned business details missing one document
	form := detailsStepForm()
	form.UseCorporateInfo = true
	form.ProfileSameAsCorporate = true
	form.BusinessDetails = BusinessDetails{BusinessName: "Fresh Cards Ltd", Phone: "+15550100"}
	form.BusinessDocuments.Logo = types.FileRef{Pending: &types.PendingFile{FileName: "logo.png", Content: []byte{1}}}
	form.BusinessDocuments.CertOfIncorp = types.FileRef{RemoteKey: "documents/prior/cert"}
	form.BusinessDocuments.BusinessLicense = types.FileRef{RemoteKey: "documents/prior/license"}

	_, err := f.svc.Submit(context.Background(), uuid.New(), &corporateID, form)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing utility bill, got %v", err)
	}
	details, ok := typed.Details().(ValidationErrors)
	if !ok {
		t.Fatalf("expected field errors, got %#v", typed.Details())
	}
	if _, present := details["utility_bill"]; !present {
		t.Fatalf("expected utility_bill to be reported missing, got %v", details)
	}
	// articles of incorporation is optional and must not be reported
	if _, present := details["articles_of_incorporation"]; present {
		t.Fatalf("articles must stay optional, got %v", details)
	}
	if f.vendors.created != nil {
		t.Fatal("no vendor account may be created when a required document is missing")
	}
}

func TestSubmitInvalidatesCachesAndClearsDraft(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	userID := uuid.New()
	corporateID := uuid.New()

	form := detailsStepForm()
	form.UseCorporateInfo = true
	form.ProfileSameAsCorporate = true
	form.BusinessDetailsSameAsCorporate = true

	if err := f.svc.SaveDraft(context.Background(), userID, form); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	if _, err := f.svc.Submit(context.Background(), userID, &corporateID, form); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(f.cache.invalidated) != 3 {
		t.Fatalf("expected 3 invalidated collections, got %v", f.cache.invalidated)
	}
	draft, err := f.svc.LoadDraft(context.Background(), userID)
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	if draft != nil {
		t.Fatal("draft must be cleared after successful submission")
	}
}

func TestDraftRoundTripPreservesFileMetadata(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	userID := uuid.New()

	form := NewFormState()
	form.VendorName = "Draft Cards"
	form.PersonalDetails = validProfileDetails()
	form.IdentityDocuments.Front = types.FileRef{Pending: &types.PendingFile{
		FileName:  "front.png",
		MimeType:  "image/png",
		SizeBytes: 4,
		Content:   []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}}

	if err := f.svc.SaveDraft(context.Background(), userID, form); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	restored, err := f.svc.LoadDraft(context.Background(), userID)
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	if restored == nil {
		t.Fatal("expected restored draft")
	}
	if restored.VendorName != form.VendorName {
		t.Fatalf("vendor name lost: %q", restored.VendorName)
	}
	front := restored.IdentityDocuments.Front.Pending
	if front == nil {
		t.Fatal("pending file lost in round trip")
	}
	if front.FileName != "front.png" || front.MimeType != "image/png" || front.SizeBytes != 4 {
		t.Fatalf("file metadata changed: %+v", front)
	}
	if len(front.Content) != 4 || front.Content[0] != 0xDE {
		t.Fatalf("file content changed: %v", front.Content)
	}
}
