package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/api/middleware"
	"github.com/printworks/printshop-backend/api/responses"
	"github.com/printworks/printshop-backend/api/validators"
	"github.com/printworks/printshop-backend/internal/pricing"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
)

type addOnSelectionRequest struct {
	AddOnID      uuid.UUID   `json:"add_on_id" validate:"required"`
	SubOptionIDs []uuid.UUID `json:"sub_option_ids,omitempty"`
}

type configurationRequest struct {
	ProductID        uuid.UUID               `json:"product_id" validate:"required"`
	PaperStockID     uuid.UUID               `json:"paper_stock_id" validate:"required"`
	CoatingID        uuid.UUID               `json:"coating_id" validate:"required"`
	SidesID          uuid.UUID               `json:"sides_id" validate:"required"`
	Quantity         int64                   `json:"quantity" validate:"required,gt=0"`
	SizeID           *uuid.UUID              `json:"size_id,omitempty"`
	CustomWidth      *decimal.Decimal        `json:"custom_width,omitempty"`
	CustomHeight     *decimal.Decimal        `json:"custom_height,omitempty"`
	TurnaroundTimeID uuid.UUID               `json:"turnaround_time_id" validate:"required"`
	AddOns           []addOnSelectionRequest `json:"add_ons,omitempty" validate:"dive"`
}

func (c configurationRequest) toCandidate() pricing.CandidateConfiguration {
	candidate := pricing.CandidateConfiguration{
		ProductID:        c.ProductID,
		PaperStockID:     c.PaperStockID,
		CoatingID:        c.CoatingID,
		SidesID:          c.SidesID,
		Quantity:         c.Quantity,
		SizeID:           c.SizeID,
		CustomWidth:      c.CustomWidth,
		CustomHeight:     c.CustomHeight,
		TurnaroundTimeID: c.TurnaroundTimeID,
	}
	for _, a := range c.AddOns {
		candidate.AddOns = append(candidate.AddOns, pricing.AddOnSelection{
			AddOnID:      a.AddOnID,
			SubOptionIDs: a.SubOptionIDs,
		})
	}
	return candidate
}

type quoteResponse struct {
	ProductID   uuid.UUID               `json:"product_id"`
	ProductName string                  `json:"product_name"`
	Breakdown   *pricing.PriceBreakdown `json:"breakdown"`
}

// Quote validates and prices a configuration without persisting anything.
// Anonymous callers are quoted without broker discounts.
func Quote(svc pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body configurationRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var accountID *uuid.UUID
		if raw := middleware.AccountIDFromContext(r.Context()); raw != "" {
			if parsed, err := uuid.Parse(raw); err == nil {
				accountID = &parsed
			}
		}

		quote, err := svc.QuoteConfiguration(r.Context(), accountID, body.toCandidate())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quoteResponse{
			ProductID:   quote.Configuration.Product.ID,
			ProductName: quote.Configuration.Product.Name,
			Breakdown:   quote.Breakdown,
		})
	}
}
