package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/api/responses"
	"github.com/printworks/printshop-backend/api/validators"
	"github.com/printworks/printshop-backend/internal/shipping"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
)

type shippingRatesRequest struct {
	Region    string          `json:"region" validate:"required"`
	WeightLbs decimal.Decimal `json:"weight_lbs" validate:"required"`
}

// ShippingRates quotes every enabled carrier for a destination region.
func ShippingRates(svc shipping.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "shipping service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body shippingRatesRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rates, err := svc.Rates(r.Context(), shipping.RateRequest{
			Region:    body.Region,
			WeightLbs: body.WeightLbs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"rates": rates})
	}
}
