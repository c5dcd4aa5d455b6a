package profiles

import (
	"context"
	"errors"
	"strconv"

	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
	pkgredis "github.com/giftdash/giftdash-backend/pkg/redis"
)

// CollectionUserProfile is the cache collection invalidated when a user's
// resolved context changes.
const CollectionUserProfile = "user-profile"

// ServiceParams groups dependencies for the profiles service.
type ServiceParams struct {
	Preferences PreferenceStore
	Cache       *pkgredis.Client
	Logger      *logger.Logger
}

// Service resolves and persists the active account context.
type Service struct {
	prefs  PreferenceStore
	cache  *pkgredis.Client
	logger *logger.Logger
}

// NewService builds a profiles service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Preferences == nil {
		return nil, errors.New("preference store is required")
	}
	return &Service{
		prefs:  params.Preferences,
		cache:  params.Cache,
		logger: params.Logger,
	}, nil
}

// Resolve computes the active profile for the user, honoring a url override
// when present. A failed preference read degrades to the user-type default
// rather than failing the request.
func (s *Service) Resolve(ctx context.Context, userID string, userType enums.UserType, urlParam string) (*ActiveProfile, error) {
	persisted, err := s.prefs.GetPreference(ctx, userID, PrefSelectedProfile)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn(ctx, "reading profile preference failed, using default")
		}
		persisted = ""
	}
	return ResolveActiveProfile(userType, urlParam, persisted), nil
}

// Switch persists an explicit profile selection and invalidates the cached
// user profile so the next navigation render sees the new context.
func (s *Service) Switch(ctx context.Context, userID string, userType enums.UserType, kind enums.ProfileKind) (*ActiveProfile, error) {
	if !userType.CanSwitchProfile() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "account type cannot switch profiles")
	}
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid profile")
	}

	if err := s.prefs.SetPreference(ctx, userID, PrefSelectedProfile, kind.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting profile preference")
	}

	if s.cache != nil {
		if err := s.cache.InvalidateCollections(ctx, s.cache.CacheKey(CollectionUserProfile, userID)); err != nil && s.logger != nil {
			s.logger.Warn(ctx, "invalidating user profile cache failed")
		}
	}

	return &ActiveProfile{Kind: kind, Source: ProfileSourceStored}, nil
}

// SetSidebarCollapsed persists the explicit sidebar toggle.
func (s *Service) SetSidebarCollapsed(ctx context.Context, userID string, collapsed bool) error {
	if err := s.prefs.SetPreference(ctx, userID, PrefSidebarCollapsed, strconv.FormatBool(collapsed)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting sidebar preference")
	}
	return nil
}

// SidebarCollapsed resolves the collapse state for the given viewport width.
func (s *Service) SidebarCollapsed(ctx context.Context, userID string, viewportWidth int) (bool, error) {
	stored, err := s.prefs.GetPreference(ctx, userID, PrefSidebarCollapsed)
	if err != nil {
		stored = ""
	}
	return SidebarState(stored, viewportWidth), nil
}
