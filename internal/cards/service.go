package cards

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/giftdash/giftdash-backend/pkg/db/models"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
	pkgredis "github.com/giftdash/giftdash-backend/pkg/redis"
)

// CollectionCardsByVendor is the cache collection for per-vendor catalogs.
const CollectionCardsByVendor = "cards-by-vendor-id"

type catalogCache interface {
	CacheKey(collection string, parts ...string) string
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateCollections(ctx context.Context, keys ...string) error
}

// ServiceParams groups dependencies for the cards service.
type ServiceParams struct {
	Repo     Repository
	Cache    catalogCache
	CacheTTL time.Duration
	Logger   *logger.Logger
}

// Service manages per-vendor gift card catalogs. Reads go through Redis;
// every mutation invalidates the vendor's cached catalog.
type Service struct {
	repo     Repository
	cache    catalogCache
	cacheTTL time.Duration
	logger   *logger.Logger
}

// NewService builds a cards service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, errors.New("repo is required")
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Service{
		repo:     params.Repo,
		cache:    params.Cache,
		cacheTTL: ttl,
		logger:   params.Logger,
	}, nil
}

// CreateInput models a new card product.
type CreateInput struct {
	VendorID     uuid.UUID       `json:"vendor_id" validate:"required"`
	Tier         enums.CardTier  `json:"tier" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	FaceValue    decimal.Decimal `json:"face_value"`
	CurrencyCode string          `json:"currency_code"`
}

// Create persists a card product and drops the vendor's cached catalog.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.CardProduct, error) {
	if input.VendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor_id is required")
	}
	if !input.Tier.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid card tier")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !input.FaceValue.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "face_value must be positive")
	}

	currency := strings.ToUpper(strings.TrimSpace(input.CurrencyCode))
	if currency == "" {
		currency = "USD"
	}

	product := &models.CardProduct{
		ID:           uuid.New(),
		VendorID:     input.VendorID,
		Tier:         input.Tier,
		Name:         name,
		FaceValue:    input.FaceValue,
		CurrencyCode: currency,
		Active:       true,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating card product")
	}
	s.invalidate(ctx, input.VendorID)
	return product, nil
}

// ListByVendor returns the vendor's active catalog, served from cache when
// warm. A cache failure falls through to the database.
func (s *Service) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.CardProduct, error) {
	if s.cache != nil {
		key := s.cache.CacheKey(CollectionCardsByVendor, vendorID.String())
		raw, err := s.cache.Get(ctx, key)
		if err == nil {
			var products []models.CardProduct
			if jsonErr := json.Unmarshal([]byte(raw), &products); jsonErr == nil {
				return products, nil
			}
		} else if err != pkgredis.Nil && s.logger != nil {
			s.logger.Warn(ctx, "reading card catalog cache failed")
		}
	}

	products, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing card products")
	}

	if s.cache != nil {
		if payload, err := json.Marshal(products); err == nil {
			key := s.cache.CacheKey(CollectionCardsByVendor, vendorID.String())
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil && s.logger != nil {
				s.logger.Warn(ctx, "writing card catalog cache failed")
			}
		}
	}
	return products, nil
}

// Retire deactivates a card product and drops the vendor's cached catalog.
func (s *Service) Retire(ctx context.Context, productID uuid.UUID) (*models.CardProduct, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading card product")
	}
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "card product not found")
	}
	if !product.Active {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "card product already retired")
	}
	product.Active = false
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating card product")
	}
	s.invalidate(ctx, product.VendorID)
	return product, nil
}

func (s *Service) invalidate(ctx context.Context, vendorID uuid.UUID) {
	if s.cache == nil {
		return
	}
	key := s.cache.CacheKey(CollectionCardsByVendor, vendorID.String())
	if err := s.cache.InvalidateCollections(ctx, key); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "invalidating card catalog cache failed")
	}
}
