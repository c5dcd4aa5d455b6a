package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/giftdash/giftdash-backend/internal/corporate"
	"github.com/giftdash/giftdash-backend/internal/documents"
	"github.com/giftdash/giftdash-backend/pkg/db/models"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
	"github.com/giftdash/giftdash-backend/pkg/metrics"
	"github.com/giftdash/giftdash-backend/pkg/types"
)

// cache collections refreshed after a successful submission
const (
	CollectionUserProfile   = "user-profile"
	CollectionBranches      = "branches"
	CollectionCardsByVendor = "cards-by-vendor-id"
)

type corporateLookup interface {
	FindRecordByID(ctx context.Context, corporateID uuid.UUID) (*corporate.Record, error)
}

type documentUploader interface {
	Upload(ctx context.Context, ownerID uuid.UUID, kind enums.DocumentKind, file *types.PendingFile) (*documents.UploadOutput, error)
}

type vendorWriter interface {
	Create(ctx context.Context, account *models.VendorAccount) error
}

type cacheInvalidator interface {
	CacheKey(collection string, parts ...string) string
	InvalidateCollections(ctx context.Context, keys ...string) error
}

// ServiceParams groups dependencies for the onboarding service.
type ServiceParams struct {
	Corporate corporateLookup
	Documents documentUploader
	Vendors   vendorWriter
	Drafts    DraftStore
	Cache     cacheInvalidator
	Metrics   *metrics.OnboardingMetrics
	Logger    *logger.Logger
}

// Service orchestrates the vendor onboarding wizard.
type Service struct {
	corporate corporateLookup
	documents documentUploader
	vendors   vendorWriter
	drafts    DraftStore
	cache     cacheInvalidator
	metrics   *metrics.OnboardingMetrics
	logger    *logger.Logger
}

// NewService builds an onboarding service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Corporate == nil {
		return nil, errors.New("corporate lookup is required")
	}
	if params.Documents == nil {
		return nil, errors.New("document uploader is required")
	}
	if params.Vendors == nil {
		return nil, errors.New("vendor writer is required")
	}
	if params.Drafts == nil {
		return nil, errors.New("draft store is required")
	}
	return &Service{
		corporate: params.Corporate,
		documents: params.Documents,
		vendors:   params.Vendors,
		drafts:    params.Drafts,
		cache:     params.Cache,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}, nil
}

// Advance moves the wizard forward or backward. Validation failures come back
// as field errors, not Go errors.
func (s *Service) Advance(ctx context.Context, form *FormState, event Event) (enums.WizardStep, ValidationErrors, error) {
	step, fieldErrs, err := Advance(form, event)
	if err == nil && fieldErrs == nil && event == EventNext && s.metrics != nil {
		s.metrics.IncStepAdvance(step.String())
	}
	return step, fieldErrs, err
}

// SubmitResult is returned after a successful submission.
type SubmitResult struct {
	Account *models.VendorAccount `json:"account"`
	Payload SubmissionPayload     `json:"payload"`
}

// Submit assembles the composite payload and persists the vendor account.
// On any failure the form state is left untouched so the caller can retry;
// only a successful submission resets the wizard and clears the draft.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, corporateID *uuid.UUID, form *FormState) (*SubmitResult, error) {
	start := time.Now()
	accountType := "mixed"
	if form != nil && form.FullyShared() {
		accountType = "fully_shared"
	}

	result, err := s.submit(ctx, userID, corporateID, form)
	if s.metrics != nil {
		s.metrics.ObserveSubmit(accountType, time.Since(start))
		if err != nil {
			s.metrics.IncSubmitFailure(accountType)
		} else {
			s.metrics.IncSubmitSuccess(accountType)
		}
	}
	return result, err
}

func (s *Service) submit(ctx context.Context, userID uuid.UUID, corporateID *uuid.UUID, form *FormState) (*SubmitResult, error) {
	if form == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "form state is required")
	}
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user identity missing")
	}
	if form.Step != enums.LastWizardStep() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "wizard has not reached the final step").
			WithDetails(map[string]any{"step": form.Step.String()})
	}

	sharesAnything := form.UseCorporateInfo || form.ProfileSameAsCorporate || form.BusinessDetailsSameAsCorporate
	if sharesAnything && corporateID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no corporate account to share from")
	}

	// the client sends the whole form, so step guards are re-run here
	if errs := validateForSubmission(form); len(errs) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "form is incomplete").
			WithDetails(errs)
	}

	var payload SubmissionPayload
	if form.FullyShared() {
		payload = SubmissionPayload{
			VendorName:        VendorNameSection{UseCorporateInfo: true},
			PersonalDetails:   PersonalSection{UseCorporateInfo: true},
			BusinessDetails:   BusinessDetailsSection{UseCorporateInfo: true},
			BusinessDocuments: BusinessDocumentsSection{UseCorporateInfo: true},
		}
	} else {
		var record *corporate.Record
		if sharesAnything {
			var err error
			record, err = s.corporate.FindRecordByID(ctx, *corporateID)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading corporate record")
			}
			if record == nil {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "corporate record not found")
			}
		}

		uploaded, err := s.uploadOwnedDocuments(ctx, userID, form)
		if err != nil {
			return nil, err
		}

		payload = s.assemblePayload(form, record, uploaded)
	}

	account := buildVendorAccount(userID, corporateID, form, &payload)
	if err := s.vendors.Create(ctx, account); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating vendor account")
	}

	s.invalidateAfterSubmit(ctx, userID, account)

	if err := s.drafts.ClearDraft(ctx, userID.String()); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "clearing onboarding draft failed")
	}

	form.Reset()
	return &SubmitResult{Account: account, Payload: payload}, nil
}

// uploadedKeys collects the storage keys returned by concurrent uploads.
type uploadedKeys struct {
	FrontID         string
	BackID          string
	Logo            string
	CertOfIncorp    string
	BusinessLicense string
	ArticlesIncorp  string
	UtilityBill     string
}

// uploadOwnedDocuments uploads every pending file in the sections the form
// owns. Uploads run concurrently and the batch is all-or-nothing: one failure
// aborts the submission.
func (s *Service) uploadOwnedDocuments(ctx context.Context, userID uuid.UUID, form *FormState) (*uploadedKeys, error) {
	keys := &uploadedKeys{}

	type job struct {
		kind enums.DocumentKind
		ref  types.FileRef
		dest *string
	}
	var jobs []job

	if !form.ProfileSameAsCorporate {
		jobs = append(jobs,
			job{enums.DocumentKindFrontID, form.IdentityDocuments.Front, &keys.FrontID},
			job{enums.DocumentKindBackID, form.IdentityDocuments.Back, &keys.BackID},
		)
	}
	if !form.BusinessDetailsSameAsCorporate {
		jobs = append(jobs,
			job{enums.DocumentKindLogo, form.BusinessDocuments.Logo, &keys.Logo},
			job{enums.DocumentKindCertOfIncorp, form.BusinessDocuments.CertOfIncorp, &keys.CertOfIncorp},
			job{enums.DocumentKindBusinessLicense, form.BusinessDocuments.BusinessLicense, &keys.BusinessLicense},
			job{enums.DocumentKindArticlesOfIncorp, form.BusinessDocuments.ArticlesIncorp, &keys.ArticlesIncorp},
			job{enums.DocumentKindUtilityBill, form.BusinessDocuments.UtilityBill, &keys.UtilityBill},
		)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		j := j
		switch {
		case j.ref.IsUploaded():
			// already has a remote key, nothing to do
			*j.dest = j.ref.RemoteKey
		case j.ref.Pending != nil:
			g.Go(func() error {
				out, err := s.documents.Upload(gctx, userID, j.kind, j.ref.Pending)
				if err != nil {
					if s.metrics != nil {
						s.metrics.IncUploadFailure(j.kind.String())
					}
					return err
				}
				if s.metrics != nil {
					s.metrics.AddUploadBytes(j.kind.String(), int64(len(j.ref.Pending.Content)))
				}
				*j.dest = out.FileKey
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		typed := pkgerrors.As(err)
		if typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "uploading documents")
	}
	return keys, nil
}

func (s *Service) assemblePayload(form *FormState, record *corporate.Record, uploaded *uploadedKeys) SubmissionPayload {
	var payload SubmissionPayload

	if form.UseCorporateInfo {
		payload.VendorName = VendorNameSection{UseCorporateInfo: true, Name: corporateName(record)}
	} else {
		payload.VendorName = VendorNameSection{Name: strings.TrimSpace(form.VendorName)}
	}

	if form.ProfileSameAsCorporate {
		payload.PersonalDetails = personalFromCorporate(record)
	} else {
		code, national := DeriveCountryCode(form.PersonalDetails.Phone)
		payload.PersonalDetails = PersonalSection{
			FirstName:        form.PersonalDetails.FirstName,
			LastName:         form.PersonalDetails.LastName,
			DateOfBirth:      form.PersonalDetails.DateOfBirth,
			StreetAddress:    form.PersonalDetails.StreetAddress,
			IDType:           form.PersonalDetails.IDType,
			IDNumber:         form.PersonalDetails.IDNumber,
			Phone:            national,
			PhoneCountryCode: code,
			Email:            form.PersonalDetails.Email,
			FrontIDKey:       uploaded.FrontID,
			BackIDKey:        uploaded.BackID,
		}
	}

	if form.BusinessDetailsSameAsCorporate {
		payload.BusinessDetails = businessFromCorporate(record)
		payload.BusinessDocuments = documentsFromCorporate(record)
	} else {
		code, national := DeriveCountryCode(form.BusinessDetails.Phone)
		payload.BusinessDetails = BusinessDetailsSection{
			BusinessName:       form.BusinessDetails.BusinessName,
			RegistrationNumber: form.BusinessDetails.RegistrationNumber,
			StreetAddress:      form.BusinessDetails.StreetAddress,
			City:               form.BusinessDetails.City,
			Country:            form.BusinessDetails.Country,
			Phone:              national,
			PhoneCountryCode:   code,
			Email:              form.BusinessDetails.Email,
			Website:            form.BusinessDetails.Website,
		}
		payload.BusinessDocuments = BusinessDocumentsSection{
			LogoKey:            uploaded.Logo,
			CertOfIncorpKey:    uploaded.CertOfIncorp,
			BusinessLicenseKey: uploaded.BusinessLicense,
			ArticlesIncorpKey:  uploaded.ArticlesIncorp,
			UtilityBillKey:     uploaded.UtilityBill,
		}
	}

	return payload
}

func (s *Service) invalidateAfterSubmit(ctx context.Context, userID uuid.UUID, account *models.VendorAccount) {
	if s.cache == nil {
		return
	}
	keys := []string{
		s.cache.CacheKey(CollectionUserProfile, userID.String()),
		s.cache.CacheKey(CollectionBranches),
		s.cache.CacheKey(CollectionCardsByVendor, account.ID.String()),
	}
	if err := s.cache.InvalidateCollections(ctx, keys...); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "invalidating caches after submission failed")
	}
}

// SaveDraft persists the current wizard progress under the user's fixed key.
func (s *Service) SaveDraft(ctx context.Context, userID uuid.UUID, form *FormState) error {
	return s.drafts.SaveDraft(ctx, userID.String(), form)
}

// LoadDraft restores saved progress, or nil when the user has none.
func (s *Service) LoadDraft(ctx context.Context, userID uuid.UUID) (*FormState, error) {
	return s.drafts.LoadDraft(ctx, userID.String())
}

// ClearDraft drops saved progress without submitting.
func (s *Service) ClearDraft(ctx context.Context, userID uuid.UUID) error {
	return s.drafts.ClearDraft(ctx, userID.String())
}

func corporateName(record *corporate.Record) string {
	if record == nil {
		return ""
	}
	if detail := record.PrimaryBusinessDetail(); detail != nil {
		return detail.BusinessName
	}
	return record.User.DisplayName
}

func personalFromCorporate(record *corporate.Record) PersonalSection {
	section := PersonalSection{UseCorporateInfo: true}
	if record == nil {
		return section
	}
	first, last := splitDisplayName(record.User.DisplayName)
	section.FirstName = first
	section.LastName = last
	section.Email = record.User.Email
	if record.User.Phone != nil {
		code, national := DeriveCountryCode(*record.User.Phone)
		section.Phone = national
		section.PhoneCountryCode = code
	}
	section.FrontIDKey = record.IDImageKey(enums.DocumentKindFrontID)
	section.BackIDKey = record.IDImageKey(enums.DocumentKindBackID)
	return section
}

func businessFromCorporate(record *corporate.Record) BusinessDetailsSection {
	section := BusinessDetailsSection{UseCorporateInfo: true}
	if record == nil {
		return section
	}
	detail := record.PrimaryBusinessDetail()
	if detail == nil {
		return section
	}
	section.BusinessName = detail.BusinessName
	if detail.RegistrationNumber != nil {
		section.RegistrationNumber = *detail.RegistrationNumber
	}
	section.StreetAddress = detail.StreetAddress
	if detail.City != nil {
		section.City = *detail.City
	}
	if detail.Country != nil {
		section.Country = *detail.Country
	}
	section.Phone = detail.Phone
	section.PhoneCountryCode = detail.PhoneCountryCode
	section.Email = detail.Email
	if detail.Website != nil {
		section.Website = *detail.Website
	}
	return section
}

func documentsFromCorporate(record *corporate.Record) BusinessDocumentsSection {
	section := BusinessDocumentsSection{UseCorporateInfo: true}
	if record == nil {
		return section
	}
	section.LogoKey = record.DocumentKey(enums.DocumentKindLogo)
	section.CertOfIncorpKey = record.DocumentKey(enums.DocumentKindCertOfIncorp)
	section.BusinessLicenseKey = record.DocumentKey(enums.DocumentKindBusinessLicense)
	section.ArticlesIncorpKey = record.DocumentKey(enums.DocumentKindArticlesOfIncorp)
	section.UtilityBillKey = record.DocumentKey(enums.DocumentKindUtilityBill)
	return section
}

func buildVendorAccount(userID uuid.UUID, corporateID *uuid.UUID, form *FormState, payload *SubmissionPayload) *models.VendorAccount {
	account := &models.VendorAccount{
		ID:          uuid.New(),
		CorporateID: corporateID,
		CreatedBy:   userID,
		Status:      enums.AccountStatusPending,

		NameFromCorporate:     form.UseCorporateInfo,
		ProfileFromCorporate:  form.ProfileSameAsCorporate,
		BusinessFromCorporate: form.BusinessDetailsSameAsCorporate,
		DocsFromCorporate:     form.BusinessDetailsSameAsCorporate,
	}

	if name := payload.VendorName.Name; name != "" {
		account.Name = &name
	}

	p := payload.PersonalDetails
	account.FirstName = strPtr(p.FirstName)
	account.LastName = strPtr(p.LastName)
	account.StreetAddress = strPtr(p.StreetAddress)
	account.IDType = strPtr(p.IDType)
	account.IDNumber = strPtr(p.IDNumber)
	account.Phone = strPtr(p.Phone)
	account.PhoneCountryCode = strPtr(p.PhoneCountryCode)
	account.Email = strPtr(p.Email)
	account.FrontIDKey = strPtr(p.FrontIDKey)
	account.BackIDKey = strPtr(p.BackIDKey)
	account.LogoKey = strPtr(payload.BusinessDocuments.LogoKey)
	if p.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", p.DateOfBirth); err == nil {
			account.DateOfBirth = &dob
		}
	}

	return account
}

func splitDisplayName(name string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func strPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
