package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/api/middleware"
	"github.com/giftdash/giftdash-backend/api/responses"
	"github.com/giftdash/giftdash-backend/api/validators"
	"github.com/giftdash/giftdash-backend/internal/identity"
	"github.com/giftdash/giftdash-backend/internal/navigation"
	"github.com/giftdash/giftdash-backend/internal/profiles"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
)

// NavigationMenu resolves the caller's active profile and returns the menu
// sections derived for it, with every route already decorated with the
// account context. The optional viewport_width query drives the forced
// sidebar collapse below the breakpoint.
func NavigationMenu(identitySvc *identity.Service, profileSvc *profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if identitySvc == nil || profileSvc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "navigation services unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		ident, err := identitySvc.GetIdentity(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		accountParam := strings.TrimSpace(r.URL.Query().Get("account"))
		profile, err := profileSvc.Resolve(ctx, userID.String(), ident.UserType, accountParam)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		currentPath := strings.TrimSpace(r.URL.Query().Get("current_path"))
		sections := navigation.DeriveNavigationModel(profile, ident.UserType, ident.Status, currentPath)

		viewportWidth, err := validators.ParseQueryInt(r, "viewport_width", 0, 0, 10000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		collapsed, err := profileSvc.SidebarCollapsed(ctx, userID.String(), viewportWidth)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"profile":           profile,
			"sections":          sections,
			"sidebar_collapsed": collapsed,
		})
	}
}
