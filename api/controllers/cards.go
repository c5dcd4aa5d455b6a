package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/giftdash/giftdash-backend/api/responses"
	"github.com/giftdash/giftdash-backend/api/validators"
	"github.com/giftdash/giftdash-backend/internal/cards"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
)

type createCardPayload struct {
	VendorID     string `json:"vendor_id" validate:"required,uuid4"`
	Tier         string `json:"tier" validate:"required"`
	Name         string `json:"name" validate:"required"`
	FaceValue    string `json:"face_value" validate:"required"`
	CurrencyCode string `json:"currency_code"`
}

func (p createCardPayload) toInput() (cards.CreateInput, error) {
	vendorID, err := uuid.Parse(p.VendorID)
	if err != nil {
		return cards.CreateInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vendor id")
	}
	tier, err := enums.ParseCardTier(strings.TrimSpace(p.Tier))
	if err != nil {
		return cards.CreateInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid tier")
	}
	faceValue, err := decimal.NewFromString(p.FaceValue)
	if err != nil {
		return cards.CreateInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid face value")
	}
	return cards.CreateInput{
		VendorID:     vendorID,
		Tier:         tier,
		Name:         p.Name,
		FaceValue:    faceValue,
		CurrencyCode: p.CurrencyCode,
	}, nil
}

// CardCreate adds a card product to a vendor's catalog.
func CardCreate(svc *cards.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "card service unavailable"))
			return
		}

		var payload createCardPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// CardList returns a vendor's active catalog, served from cache when warm.
func CardList(svc *cards.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "card service unavailable"))
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

		responses.WriteSuccess(w, map[string]any{"cards": list})
	}
}

// CardRetire deactivates a card product.
func CardRetire(svc *cards.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "card service unavailable"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "cardId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid card id"))
			return
		}

		product, err := svc.Retire(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
