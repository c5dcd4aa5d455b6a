package branches

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/giftdash/giftdash-backend/pkg/db/models"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
)

type stubRepo struct {
	branches map[uuid.UUID]*models.Branch
}

func newStubRepo() *stubRepo {
	return &stubRepo{branches: map[uuid.UUID]*models.Branch{}}
}

func (s *stubRepo) Create(_ context.Context, branch *models.Branch) error {
	s.branches[branch.ID] = branch
	return nil
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Branch, error) {
	return s.branches[id], nil
}

func (s *stubRepo) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]models.Branch, error) {
	var out []models.Branch
	for _, b := range s.branches {
		if b.VendorID == vendorID && b.Status == enums.BranchStatusActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *stubRepo) Update(_ context.Context, branch *models.Branch) error {
	s.branches[branch.ID] = branch
	return nil
}

type stubCache struct {
	invalidated []string
}

func (s *stubCache) CacheKey(collection string, parts ...string) string {
	key := "gd:cache:" + collection
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func (s *stubCache) InvalidateCollections(_ context.Context, keys ...string) error {
	s.invalidated = append(s.invalidated, keys...)
	return nil
}

func newTestService(t *testing.T) (*Service, *stubRepo, *stubCache) {
	t.Helper()
	repo := newStubRepo()
	cache := &stubCache{}
	svc, err := NewService(ServiceParams{Repo: repo, Cache: cache})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo, cache
}

func TestCreateBranchInvalidatesCache(t *testing.T) {
	t.Parallel()

	svc, _, cache := newTestService(t)
	vendorID := uuid.New()

	branch, err := svc.Create(context.Background(), CreateInput{VendorID: vendorID, Name: "Harbour St"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if branch.Status != enums.BranchStatusActive {
		t.Fatalf("expected active branch, got %s", branch.Status)
	}
	if len(cache.invalidated) == 0 {
		t.Fatal("expected cache invalidation on create")
	}
}

func TestCreateBranchValidatesInput(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	_, err := svc.Create(context.Background(), CreateInput{VendorID: uuid.New(), Name: "   "})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeactivateTwiceIsStateConflict(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	branch, err := svc.Create(context.Background(), CreateInput{VendorID: uuid.New(), Name: "Harbour St"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Deactivate(context.Background(), branch.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	_, err = svc.Deactivate(context.Background(), branch.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestDeactivatedBranchLeavesListing(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	vendorID := uuid.New()
	branch, err := svc.Create(context.Background(), CreateInput{VendorID: vendorID, Name: "Harbour St"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Deactivate(context.Background(), branch.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	listed, err := svc.ListByVendor(context.Background(), vendorID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty listing, got %d", len(listed))
	}
}

func TestAssignManager(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	branch, err := svc.Create(context.Background(), CreateInput{VendorID: uuid.New(), Name: "Harbour St"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	managerID := uuid.New()
	updated, err := svc.AssignManager(context.Background(), branch.ID, managerID)
	if err != nil {
		t.Fatalf("assign manager: %v", err)
	}
	if updated.ManagerID == nil || *updated.ManagerID != managerID {
		t.Fatalf("manager not assigned: %+v", updated)
	}
}
