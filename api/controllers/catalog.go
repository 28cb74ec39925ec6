package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/api/responses"
	"github.com/printworks/printshop-backend/internal/catalog"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
)

type catalogResponse struct {
	Product     productSummary          `json:"product"`
	PaperStocks []paperStockOption      `json:"paper_stocks"`
	Quantities  quantityOptionsResponse `json:"quantities"`
	Sizes       sizeOptionsResponse     `json:"sizes"`
	AddOns      []addOnOption           `json:"add_ons"`
	Turnarounds []turnaroundOption      `json:"turnaround_times"`
}

type productSummary struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Category        string          `json:"category"`
	BasePrice       decimal.Decimal `json:"base_price"`
	SetupFee        decimal.Decimal `json:"setup_fee"`
	RushEligible    bool            `json:"rush_eligible"`
	GangRunEligible bool            `json:"gang_run_eligible"`
}

type paperStockOption struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	PriceDelta decimal.Decimal `json:"price_delta"`
	IsDefault  bool            `json:"is_default"`
	Coatings   []coatingOption `json:"coatings"`
	Sides      []sidesOption   `json:"sides"`
}

type coatingOption struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	IsNone     bool            `json:"is_none"`
	PriceDelta decimal.Decimal `json:"price_delta"`
	IsDefault  bool            `json:"is_default"`
}

type sidesOption struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	PriceDelta decimal.Decimal `json:"price_delta"`
	IsDefault  bool            `json:"is_default"`
}

type quantityOptionsResponse struct {
	Values       []int64 `json:"values"`
	DefaultValue int64   `json:"default_value"`
	HasCustom    bool    `json:"has_custom"`
	CustomMin    *int64  `json:"custom_min,omitempty"`
	CustomMax    *int64  `json:"custom_max,omitempty"`
}

type sizeOptionsResponse struct {
	Sizes           []sizeOption     `json:"sizes"`
	HasCustom       bool             `json:"has_custom"`
	CustomMinWidth  *decimal.Decimal `json:"custom_min_width,omitempty"`
	CustomMaxWidth  *decimal.Decimal `json:"custom_max_width,omitempty"`
	CustomMinHeight *decimal.Decimal `json:"custom_min_height,omitempty"`
	CustomMaxHeight *decimal.Decimal `json:"custom_max_height,omitempty"`
}

type sizeOption struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Width     decimal.Decimal `json:"width"`
	Height    decimal.Decimal `json:"height"`
	IsDefault bool            `json:"is_default"`
}

type addOnOption struct {
	ID                       uuid.UUID         `json:"id"`
	Name                     string            `json:"name"`
	PricingModel             string            `json:"pricing_model"`
	AdditionalTurnaroundDays int               `json:"additional_turnaround_days"`
	SubOptions               []subOptionOption `json:"sub_options,omitempty"`
}

type subOptionOption struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	PriceDelta     decimal.Decimal `json:"price_delta"`
	Required       bool            `json:"required"`
	ExclusionGroup string          `json:"exclusion_group,omitempty"`
}

type turnaroundOption struct {
	ID                   uuid.UUID   `json:"id"`
	Name                 string      `json:"name"`
	DaysMin              int         `json:"days_min"`
	DaysMax              int         `json:"days_max"`
	RequiresNoCoating    bool        `json:"requires_no_coating"`
	RestrictedCoatingIDs []uuid.UUID `json:"restricted_coating_ids,omitempty"`
	IsDefault            bool        `json:"is_default"`
}

// ProductCatalog returns the resolved option catalog for one product.
func ProductCatalog(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "invalid product id"))
			return
		}

		resolved, err := svc.Resolve(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCatalogResponse(resolved))
	}
}

func newCatalogResponse(resolved *catalog.ResolvedProduct) catalogResponse {
	out := catalogResponse{
		Product: productSummary{
			ID:              resolved.Product.ID,
			Name:            resolved.Product.Name,
			Slug:            resolved.Product.Slug,
			Category:        string(resolved.Product.Category),
			BasePrice:       resolved.Product.BasePrice,
			SetupFee:        resolved.Product.SetupFee,
			RushEligible:    resolved.Product.RushEligible,
			GangRunEligible: resolved.Product.GangRunEligible,
		},
		Quantities: quantityOptionsResponse{
			Values:       resolved.Quantities.Values,
			DefaultValue: resolved.Quantities.DefaultValue,
			HasCustom:    resolved.Quantities.HasCustom,
			CustomMin:    resolved.Quantities.CustomMin,
			CustomMax:    resolved.Quantities.CustomMax,
		},
		Sizes: sizeOptionsResponse{
			HasCustom:       resolved.Sizes.HasCustom,
			CustomMinWidth:  resolved.Sizes.CustomMinWidth,
			CustomMaxWidth:  resolved.Sizes.CustomMaxWidth,
			CustomMinHeight: resolved.Sizes.CustomMinHeight,
			CustomMaxHeight: resolved.Sizes.CustomMaxHeight,
		},
	}

	for _, stock := range resolved.PaperStocks {
		option := paperStockOption{
			ID:         stock.ID,
			Name:       stock.Name,
			PriceDelta: stock.PriceDelta,
			IsDefault:  stock.IsDefault,
		}
		for _, c := range stock.Coatings {
			option.Coatings = append(option.Coatings, coatingOption{
				ID:         c.ID,
				Name:       c.Name,
				IsNone:     c.IsNone,
				PriceDelta: c.PriceDelta,
				IsDefault:  c.IsDefault,
			})
		}
		for _, s := range stock.Sides {
			option.Sides = append(option.Sides, sidesOption{
				ID:         s.ID,
				Name:       s.Name,
				PriceDelta: s.PriceDelta,
				IsDefault:  s.IsDefault,
			})
		}
		out.PaperStocks = append(out.PaperStocks, option)
	}

	for _, sz := range resolved.Sizes.Sizes {
		out.Sizes.Sizes = append(out.Sizes.Sizes, sizeOption{
			ID:        sz.ID,
			Name:      sz.Name,
			Width:     sz.Width,
			Height:    sz.Height,
			IsDefault: sz.IsDefault,
		})
	}

	for _, a := range resolved.AddOns {
		option := addOnOption{
			ID:                       a.AddOn.ID,
			Name:                     a.AddOn.Name,
			PricingModel:             string(a.AddOn.PricingModel),
			AdditionalTurnaroundDays: a.AddOn.AdditionalTurnaroundDays,
		}
		for _, sub := range a.SubOptions {
			option.SubOptions = append(option.SubOptions, subOptionOption{
				ID:             sub.ID,
				Name:           sub.Name,
				PriceDelta:     sub.PriceDelta,
				Required:       sub.Required,
				ExclusionGroup: sub.ExclusionGroup,
			})
		}
		out.AddOns = append(out.AddOns, option)
	}

	for _, tt := range resolved.Turnarounds {
		out.Turnarounds = append(out.Turnarounds, turnaroundOption{
			ID:                   tt.Turnaround.ID,
			Name:                 tt.Turnaround.Name,
			DaysMin:              tt.Turnaround.DaysMin,
			DaysMax:              tt.Turnaround.DaysMax,
			RequiresNoCoating:    tt.Turnaround.RequiresNoCoating,
			RestrictedCoatingIDs: []uuid.UUID(tt.Turnaround.RestrictedCoatingIDs),
			IsDefault:            tt.IsDefault,
		})
	}

	return out
}
