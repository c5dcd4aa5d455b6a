package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/api/middleware"
	"github.com/giftdash/giftdash-backend/internal/profiles"
	"github.com/giftdash/giftdash-backend/pkg/enums"
)

type stubPreferenceStore struct {
	mu    sync.Mutex
	prefs map[string]string
}

func newStubPreferenceStore() *stubPreferenceStore {
	return &stubPreferenceStore{prefs: map[string]string{}}
}

func (s *stubPreferenceStore) GetPreference(_ context.Context, userID, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs[userID+"/"+name], nil
}

func (s *stubPreferenceStore) SetPreference(_ context.Context, userID, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[userID+"/"+name] = value
	return nil
}

func (s *stubPreferenceStore) DeletePreference(_ context.Context, userID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.prefs, userID+"/"+name)
	return nil
}

func newProfileService(t *testing.T, prefs *stubPreferenceStore) *profiles.Service {
	t.Helper()
	svc, err := profiles.NewService(profiles.ServiceParams{Preferences: prefs})
	if err != nil {
		t.Fatalf("new profile service: %v", err)
	}
	return svc
}

func authedRequest(method, target string, body []byte, userID uuid.UUID, userType enums.UserType) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx := middleware.WithUserID(req.Context(), userID.String())
	ctx = middleware.WithUserType(ctx, userType.String())
	return req.WithContext(ctx)
}

func TestProfileSwitchPersistsSelection(t *testing.T) {
	prefs := newStubPreferenceStore()
	handler := ProfileSwitch(newProfileService(t, prefs), nil)

	userID := uuid.New()
	req := authedRequest(http.MethodPost, "/api/v1/profiles/switch", []byte(`{"profile":"corporate"}`), userID, enums.UserTypeCorporateVendor)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data profiles.ActiveProfile `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Kind != enums.ProfileKindCorporate {
		t.Fatalf("expected corporate profile got %s", envelope.Data.Kind)
	}

	stored, err := prefs.GetPreference(context.Background(), userID.String(), profiles.PrefSelectedProfile)
	if err != nil {
		t.Fatalf("get preference: %v", err)
	}
	if stored != "corporate" {
		t.Fatalf("expected stored preference corporate got %q", stored)
	}
}

func TestProfileSwitchForbiddenForFixedContext(t *testing.T) {
	handler := ProfileSwitch(newProfileService(t, newStubPreferenceStore()), nil)

	req := authedRequest(http.MethodPost, "/api/v1/profiles/switch", []byte(`{"profile":"vendor"}`), uuid.New(), enums.UserTypeUser)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}

func TestProfileSwitchMissingContext(t *testing.T) {
	handler := ProfileSwitch(newProfileService(t, newStubPreferenceStore()), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles/switch", bytes.NewReader([]byte(`{"profile":"vendor"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestSidebarPreferenceRoundTrip(t *testing.T) {
	prefs := newStubPreferenceStore()
	handler := SidebarPreference(newProfileService(t, prefs), nil)

	userID := uuid.New()
	req := authedRequest(http.MethodPut, "/api/v1/preferences/sidebar", []byte(`{"collapsed":true}`), userID, enums.UserTypeVendor)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	stored, err := prefs.GetPreference(context.Background(), userID.String(), profiles.PrefSidebarCollapsed)
	if err != nil {
		t.Fatalf("get preference: %v", err)
	}
	if stored != "true" {
		t.Fatalf("expected stored preference true got %q", stored)
	}
}
