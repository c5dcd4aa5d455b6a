package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/api/middleware"
	"github.com/giftdash/giftdash-backend/api/responses"
	"github.com/giftdash/giftdash-backend/api/validators"
	"github.com/giftdash/giftdash-backend/internal/profiles"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
)

type switchProfilePayload struct {
	Profile string `json:"profile" validate:"required"`
}

type sidebarPreferencePayload struct {
	Collapsed bool `json:"collapsed"`
}

// ProfileSwitch persists the caller's selected account context.
func ProfileSwitch(svc *profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if _, err := uuid.Parse(userID); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload switchProfilePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		kind, err := enums.ParseProfileKind(strings.TrimSpace(payload.Profile))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid profile"))
			return
		}

		userType, err := enums.ParseUserType(middleware.UserTypeFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user type missing"))
			return
		}

		profile, err := svc.Switch(ctx, userID, userType, kind)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// SidebarPreference stores the explicit collapse toggle. The forced collapse
// below the viewport breakpoint never lands here; only user intent does.
func SidebarPreference(svc *profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if _, err := uuid.Parse(userID); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload sidebarPreferencePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.SetSidebarCollapsed(ctx, userID, payload.Collapsed); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"collapsed": payload.Collapsed})
	}
}
