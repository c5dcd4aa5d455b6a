package onboarding

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	pkgredis "github.com/giftdash/giftdash-backend/pkg/redis"
)

// DraftName is the fixed per-user draft key for wizard progress.
const DraftName = "business-details"

// DraftStore persists an in-progress form, pending file bytes included.
type DraftStore interface {
	SaveDraft(ctx context.Context, userID string, form *FormState) error
	LoadDraft(ctx context.Context, userID string) (*FormState, error)
	ClearDraft(ctx context.Context, userID string) error
}

type redisDraftStore struct {
	client *pkgredis.Client
	ttl    time.Duration
}

// NewRedisDraftStore adapts the shared Redis client to draft persistence.
// Drafts expire after the configured TTL. File contents ride along as base64
// inside the JSON document, so a reload reconstructs name, mime, size and
// bytes.
func NewRedisDraftStore(client *pkgredis.Client, ttl time.Duration) DraftStore {
	return &redisDraftStore{client: client, ttl: ttl}
}

func (s *redisDraftStore) SaveDraft(ctx context.Context, userID string, form *FormState) error {
	if form == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "form state is required")
	}
	payload, err := json.Marshal(form)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serializing draft")
	}
	if err := s.client.Set(ctx, s.client.DraftKey(userID, DraftName), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting draft")
	}
	return nil
}

func (s *redisDraftStore) LoadDraft(ctx context.Context, userID string) (*FormState, error) {
	raw, err := s.client.Get(ctx, s.client.DraftKey(userID, DraftName))
	if err != nil {
		if err == pkgredis.Nil {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading draft")
	}
	var form FormState
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deserializing draft")
	}
	return &form, nil
}

func (s *redisDraftStore) ClearDraft(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.client.DraftKey(userID, DraftName)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing draft")
	}
	return nil
}
