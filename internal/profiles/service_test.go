package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
)

type memoryPreferenceStore struct {
	values  map[string]string
	getErr  error
	setErr  error
	setKeys []string
}

func newMemoryPreferenceStore() *memoryPreferenceStore {
	return &memoryPreferenceStore{values: map[string]string{}}
}

func (m *memoryPreferenceStore) GetPreference(_ context.Context, userID, name string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.values[userID+"/"+name], nil
}

func (m *memoryPreferenceStore) SetPreference(_ context.Context, userID, name, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	key := userID + "/" + name
	m.values[key] = value
	m.setKeys = append(m.setKeys, key)
	return nil
}

func (m *memoryPreferenceStore) DeletePreference(_ context.Context, userID, name string) error {
	delete(m.values, userID+"/"+name)
	return nil
}

func TestServiceResolveUsesPersistedPreference(t *testing.T) {
	t.Parallel()

	prefs := newMemoryPreferenceStore()
	prefs.values["u1/"+PrefSelectedProfile] = "corporate"

	svc, err := NewService(ServiceParams{Preferences: prefs})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	got, err := svc.Resolve(context.Background(), "u1", enums.UserTypeCorporateVendor, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got == nil || got.Kind != enums.ProfileKindCorporate {
		t.Fatalf("expected corporate profile, got %+v", got)
	}
}

func TestServiceResolveDegradesOnPreferenceFailure(t *testing.T) {
	t.Parallel()

	prefs := newMemoryPreferenceStore()
	prefs.getErr = errors.New("redis down")

	svc, err := NewService(ServiceParams{Preferences: prefs})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	got, err := svc.Resolve(context.Background(), "u1", enums.UserTypeVendor, "")
	if err != nil {
		t.Fatalf("resolve should not fail on preference read error: %v", err)
	}
	if got == nil || got.Source != ProfileSourceDefault {
		t.Fatalf("expected default-sourced profile, got %+v", got)
	}
}

func TestServiceSwitchPersistsSelection(t *testing.T) {
	t.Parallel()

	prefs := newMemoryPreferenceStore()
	svc, err := NewService(ServiceParams{Preferences: prefs})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	got, err := svc.Switch(context.Background(), "u1", enums.UserTypeCorporateVendor, enums.ProfileKindCorporate)
	if err != nil {
		t.Fatalf("switch: %v", err)
	}
	if got.Kind != enums.ProfileKindCorporate {
		t.Fatalf("expected corporate, got %s", got.Kind)
	}
	if prefs.values["u1/"+PrefSelectedProfile] != "corporate" {
		t.Fatalf("preference not persisted: %v", prefs.values)
	}
}

func TestServiceSwitchRejectsFixedContextTypes(t *testing.T) {
	t.Parallel()

	svc, err := NewService(ServiceParams{Preferences: newMemoryPreferenceStore()})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	_, err = svc.Switch(context.Background(), "u1", enums.UserTypeBranch, enums.ProfileKindVendor)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestServiceSidebarRoundTrip(t *testing.T) {
	t.Parallel()

	prefs := newMemoryPreferenceStore()
	svc, err := NewService(ServiceParams{Preferences: prefs})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	ctx := context.Background()
	if err := svc.SetSidebarCollapsed(ctx, "u1", true); err != nil {
		t.Fatalf("set sidebar: %v", err)
	}

	collapsed, err := svc.SidebarCollapsed(ctx, "u1", 1400)
	if err != nil {
		t.Fatalf("sidebar state: %v", err)
	}
	if !collapsed {
		t.Fatal("expected collapsed after explicit toggle")
	}

	// narrow viewport forces collapsed without rewriting the preference
	if err := svc.SetSidebarCollapsed(ctx, "u1", false); err != nil {
		t.Fatalf("set sidebar: %v", err)
	}
	collapsed, err = svc.SidebarCollapsed(ctx, "u1", 700)
	if err != nil {
		t.Fatalf("sidebar state: %v", err)
	}
	if !collapsed {
		t.Fatal("expected forced collapse at narrow viewport")
	}
	if prefs.values["u1/"+PrefSidebarCollapsed] != "false" {
		t.Fatal("forced collapse must not overwrite the stored preference")
	}
}
