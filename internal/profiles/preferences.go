package profiles

import (
	"context"
	"time"

	pkgredis "github.com/giftdash/giftdash-backend/pkg/redis"
)

const (
	// preference names, fixed per user
	PrefSelectedProfile  = "selectedProfile"
	PrefSidebarCollapsed = "sidebarCollapsed"
)

// PreferenceStore is the key-value port behind resolved profile and sidebar
// preferences. Values are plain strings; a missing key returns ("", nil).
type PreferenceStore interface {
	GetPreference(ctx context.Context, userID, name string) (string, error)
	SetPreference(ctx context.Context, userID, name, value string) error
	DeletePreference(ctx context.Context, userID, name string) error
}

type redisPreferenceStore struct {
	client *pkgredis.Client
}

// NewRedisPreferenceStore adapts the shared Redis client to the preference
// port. Preferences have no TTL; they live until explicitly changed.
func NewRedisPreferenceStore(client *pkgredis.Client) PreferenceStore {
	return &redisPreferenceStore{client: client}
}

func (s *redisPreferenceStore) GetPreference(ctx context.Context, userID, name string) (string, error) {
	value, err := s.client.Get(ctx, s.client.PreferenceKey(userID, name))
	if err != nil {
		if err == pkgredis.Nil {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (s *redisPreferenceStore) SetPreference(ctx context.Context, userID, name, value string) error {
	return s.client.Set(ctx, s.client.PreferenceKey(userID, name), value, time.Duration(0))
}

func (s *redisPreferenceStore) DeletePreference(ctx context.Context, userID, name string) error {
	return s.client.Del(ctx, s.client.PreferenceKey(userID, name))
}
