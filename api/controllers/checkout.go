package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/api/responses"
	"github.com/printworks/printshop-backend/api/validators"
	"github.com/printworks/printshop-backend/internal/checkout"
	"github.com/printworks/printshop-backend/internal/pricing"
	"github.com/printworks/printshop-backend/pkg/enums"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
)

type shippingSelectionRequest struct {
	Carrier   string          `json:"carrier" validate:"required"`
	Region    string          `json:"region" validate:"required"`
	WeightLbs decimal.Decimal `json:"weight_lbs" validate:"required"`
}

type checkoutRequest struct {
	Items        []configurationRequest   `json:"items" validate:"required,min=1,dive"`
	Shipping     shippingSelectionRequest `json:"shipping" validate:"required"`
	ClaimedTotal *decimal.Decimal         `json:"claimed_total,omitempty"`
}

// Checkout re-prices the submitted configurations and persists the order.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		accountID, err := accountIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]pricing.CandidateConfiguration, 0, len(body.Items))
		for _, item := range body.Items {
			items = append(items, item.toCandidate())
		}

		order, err := svc.Checkout(r.Context(), checkout.Input{
			AccountID: accountID,
			Items:     items,
			Shipping: checkout.ShippingSelection{
				Carrier:   enums.Carrier(body.Shipping.Carrier),
				Region:    body.Shipping.Region,
				WeightLbs: body.Shipping.WeightLbs,
			},
			ClaimedTotal: body.ClaimedTotal,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newOrderResponse(order))
	}
}
