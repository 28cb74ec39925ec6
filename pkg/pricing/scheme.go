// Package pricing holds the add-on pricing schemes. Each scheme computes the
// charge for one selected add-on given the running subtotal and quantity.
// Custom formulas carry their parameters as JSON configured by operators.
package pricing

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/pkg/enums"
	"github.com/printworks/printshop-backend/pkg/errors"
)

// Scheme computes the price contribution of a single add-on.
type Scheme interface {
	// Amount returns the charge. subtotal is the pre-add-on running subtotal
	// and quantity the configured piece count.
	Amount(subtotal decimal.Decimal, quantity int64) decimal.Decimal
}

// Source carries the pricing fields of an add-on without binding this package
// to the storage model.
type Source struct {
	PricingModel  enums.PricingModel
	FlatFee       decimal.Decimal
	Percentage    decimal.Decimal
	PerUnitRate   decimal.Decimal
	Configuration json.RawMessage
}

// Flat charges a fixed fee regardless of subtotal or quantity.
type Flat struct {
	Fee decimal.Decimal
}

func (s Flat) Amount(_ decimal.Decimal, _ int64) decimal.Decimal {
	return s.Fee
}

// Percentage charges Percent percent of the running subtotal.
type Percentage struct {
	Percent decimal.Decimal
}

func (s Percentage) Amount(subtotal decimal.Decimal, _ int64) decimal.Decimal {
	return subtotal.Mul(s.Percent).Div(decimal.NewFromInt(100))
}

// PerUnit charges Rate per piece.
type PerUnit struct {
	Rate decimal.Decimal
}

func (s PerUnit) Amount(_ decimal.Decimal, quantity int64) decimal.Decimal {
	return s.Rate.Mul(decimal.NewFromInt(quantity))
}

// Banding charges per bundle: ceil(quantity / ItemsPerBundle) * PerBundleRate.
// Partial bundles count as whole bundles.
type Banding struct {
	ItemsPerBundle int64
	PerBundleRate  decimal.Decimal
}

func (s Banding) Amount(_ decimal.Decimal, quantity int64) decimal.Decimal {
	bundles := quantity / s.ItemsPerBundle
	if quantity%s.ItemsPerBundle != 0 {
		bundles++
	}
	return s.PerBundleRate.Mul(decimal.NewFromInt(bundles))
}

// PerPieceFee charges BaseFee plus PerPieceRate per piece.
type PerPieceFee struct {
	BaseFee      decimal.Decimal
	PerPieceRate decimal.Decimal
}

func (s PerPieceFee) Amount(_ decimal.Decimal, quantity int64) decimal.Decimal {
	return s.BaseFee.Add(s.PerPieceRate.Mul(decimal.NewFromInt(quantity)))
}

type customConfig struct {
	Formula        string          `json:"formula"`
	ItemsPerBundle int64           `json:"items_per_bundle"`
	PerBundleRate  decimal.Decimal `json:"per_bundle_rate"`
	BaseFee        decimal.Decimal `json:"base_fee"`
	PerPieceRate   decimal.Decimal `json:"per_piece_rate"`
}

// ParseScheme builds the Scheme for an add-on. A CUSTOM model whose
// configuration JSON is missing, malformed, or names an unknown formula yields
// CodePricingModelMismatch, as does an unknown pricing model.
func ParseScheme(src Source) (Scheme, error) {
	switch src.PricingModel {
	case enums.PricingModelFlat:
		return Flat{Fee: src.FlatFee}, nil
	case enums.PricingModelPercentage:
		return Percentage{Percent: src.Percentage}, nil
	case enums.PricingModelPerUnit:
		return PerUnit{Rate: src.PerUnitRate}, nil
	case enums.PricingModelCustom:
		return parseCustom(src.Configuration)
	default:
		return nil, errors.New(errors.CodePricingModelMismatch,
			fmt.Sprintf("unknown pricing model %q", src.PricingModel))
	}
}

func parseCustom(raw json.RawMessage) (Scheme, error) {
	if len(raw) == 0 {
		return nil, errors.New(errors.CodePricingModelMismatch,
			"custom pricing model has no configuration")
	}

	var cfg customConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(errors.CodePricingModelMismatch, err,
			"custom pricing configuration is not valid JSON")
	}

	switch enums.CustomFormula(cfg.Formula) {
	case enums.CustomFormulaBanding:
		if cfg.ItemsPerBundle <= 0 {
			return nil, errors.New(errors.CodePricingModelMismatch,
				"banding formula requires items_per_bundle > 0")
		}
		return Banding{ItemsPerBundle: cfg.ItemsPerBundle, PerBundleRate: cfg.PerBundleRate}, nil
	case enums.CustomFormulaPerPieceFee:
		return PerPieceFee{BaseFee: cfg.BaseFee, PerPieceRate: cfg.PerPieceRate}, nil
	default:
		return nil, errors.New(errors.CodePricingModelMismatch,
			fmt.Sprintf("unknown custom formula %q", cfg.Formula))
	}
}
