package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/api/middleware"
	"github.com/giftdash/giftdash-backend/api/responses"
	"github.com/giftdash/giftdash-backend/api/validators"
	"github.com/giftdash/giftdash-backend/internal/identity"
	"github.com/giftdash/giftdash-backend/internal/onboarding"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
)

type advanceWizardPayload struct {
	Event string                `json:"event" validate:"required,oneof=next back"`
	Form  *onboarding.FormState `json:"form" validate:"required"`
}

type submitWizardPayload struct {
	Form *onboarding.FormState `json:"form" validate:"required"`
}

type saveDraftPayload struct {
	Form *onboarding.FormState `json:"form" validate:"required"`
}

// OnboardingAdvance runs one wizard transition. Validation failures come back
// as a field map with the step unchanged; an illegal transition is a conflict.
func OnboardingAdvance(svc *onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		var payload advanceWizardPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		step, fieldErrs, err := svc.Advance(ctx, payload.Form, onboarding.Event(strings.TrimSpace(payload.Event)))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"step":              step,
			"validation_errors": fieldErrs,
			"form":              payload.Form,
		})
	}
}

// OnboardingSubmit assembles the final payload and creates the vendor account.
func OnboardingSubmit(svc *onboarding.Service, identitySvc *identity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil || identitySvc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload submitWizardPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		ident, err := identitySvc.GetIdentity(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Submit(ctx, userID, ident.CorporateID, payload.Form)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// OnboardingDraftSave persists in-progress wizard state, pending uploads
// included, so the user can resume later.
func OnboardingDraftSave(svc *onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload saveDraftPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.SaveDraft(ctx, userID, payload.Form); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"draft": onboarding.DraftName})
	}
}

// OnboardingDraftLoad returns the saved draft, or a fresh form when none
// exists so the client always has a usable starting point.
func OnboardingDraftLoad(svc *onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		form, err := svc.LoadDraft(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		resumed := form != nil
		if form == nil {
			form = onboarding.NewFormState()
		}

		responses.WriteSuccess(w, map[string]any{
			"form":    form,
			"resumed": resumed,
		})
	}
}

// OnboardingDraftClear drops saved progress without submitting.
func OnboardingDraftClear(svc *onboarding.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "onboarding service unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		if err := svc.ClearDraft(ctx, userID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"cleared": true})
	}
}
