package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/api/responses"
	"github.com/giftdash/giftdash-backend/api/validators"
	"github.com/giftdash/giftdash-backend/internal/branches"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
)

type assignManagerPayload struct {
	ManagerID string `json:"manager_id" validate:"required,uuid4"`
}

// BranchCreate registers a new branch under a vendor account.
func BranchCreate(svc *branches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "branch service unavailable"))
			return
		}

		var input branches.CreateInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		branch, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, branch)
	}
}

// BranchList returns the active branches of a vendor account.
func BranchList(svc *branches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "branch service unavailable"))
			return
		}

		vendorID, err := uuid.Parse(chi.URLParam(r, "vendorId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vendor id"))
			return
		}

		list, err := svc.ListByVendor(ctx, vendorID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"branches": list})
	}
}

// BranchAssignManager points a branch at its managing user.
func BranchAssignManager(svc *branches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "branch service unavailable"))
			return
		}

		branchID, err := uuid.Parse(chi.URLParam(r, "branchId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid branch id"))
			return
		}

		var payload assignManagerPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		managerID, err := uuid.Parse(payload.ManagerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid manager id"))
			return
		}

		branch, err := svc.AssignManager(ctx, branchID, managerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, branch)
	}
}

// BranchDeactivate retires a branch. Deactivating twice is a conflict.
func BranchDeactivate(svc *branches.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "branch service unavailable"))
			return
		}

		branchID, err := uuid.Parse(chi.URLParam(r, "branchId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid branch id"))
			return
		}

		branch, err := svc.Deactivate(ctx, branchID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, branch)
	}
}
