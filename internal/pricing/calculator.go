package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/pkg/enums"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	addonpricing "github.com/printworks/printshop-backend/pkg/pricing"
)

var oneHundred = decimal.NewFromInt(100)

// Calculate prices a validated configuration. Steps run in a fixed order:
//
//  1. base = product base price + setup fee
//  2. paper delta = stock + coating + sides flat deltas
//  3. add-ons, each computed against the pre-add-on subtotal (percentage
//     schemes see the running pre-add-on subtotal, contributions never
//     compound on each other), plus chosen sub-option deltas
//  4. subtotal before turnaround
//  5. turnaround: percentage multiplies, flat adds
//  6. broker discount percent by product category, when present
//  7. a single half-up rounding to the cent at the very end
//
// No intermediate rounding happens; itemized lines are rounded for
// presentation and reconciled so they sum to the total exactly.
func Calculate(cfg *ValidatedConfiguration, brokerDiscountPercent *decimal.Decimal) (*PriceBreakdown, error) {
	qty := cfg.Quantity
	lines := make([]BreakdownLine, 0, 4+len(cfg.AddOns))

	// step 1
	base := cfg.Product.BasePrice.Add(cfg.Product.SetupFee)
	lines = append(lines, BreakdownLine{
		Kind:   LineKindBase,
		Label:  cfg.Product.Name,
		Amount: base,
	})

	// step 2
	paperDelta := cfg.PaperStock.PriceDelta.
		Add(cfg.Coating.PriceDelta).
		Add(cfg.Sides.PriceDelta)
	if !paperDelta.IsZero() {
		lines = append(lines, BreakdownLine{
			Kind:   LineKindPaper,
			Label:  cfg.PaperStock.Name,
			Amount: paperDelta,
		})
	}

	preAddOn := base.Add(paperDelta)

	// step 3
	addOnsTotal := decimal.Zero
	for _, va := range cfg.AddOns {
		scheme, err := addonpricing.ParseScheme(addonpricing.Source{
			PricingModel:  va.AddOn.PricingModel,
			FlatFee:       va.AddOn.FlatFee,
			Percentage:    va.AddOn.Percentage,
			PerUnitRate:   va.AddOn.PerUnitRate,
			Configuration: va.AddOn.Configuration,
		})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodePricingModelMismatch, err,
				fmt.Sprintf("add-on %q configuration does not match its pricing model", va.AddOn.Name))
		}
		amount := scheme.Amount(preAddOn, qty)
		for _, sub := range va.SubOptions {
			amount = amount.Add(sub.PriceDelta)
		}
		addOnsTotal = addOnsTotal.Add(amount)
		lines = append(lines, BreakdownLine{
			Kind:   LineKindAddOn,
			Label:  va.AddOn.Name,
			Amount: amount,
		})
	}

	// step 4
	subtotal := preAddOn.Add(addOnsTotal)

	// step 5
	final := subtotal
	switch cfg.Turnaround.PricingModel {
	case enums.TurnaroundPricingModelPercentage:
		final = subtotal.Mul(cfg.Turnaround.PriceMultiplier)
		markup := final.Sub(subtotal)
		if !markup.IsZero() {
			lines = append(lines, BreakdownLine{
				Kind:   LineKindTurnaround,
				Label:  cfg.Turnaround.Name,
				Amount: markup,
			})
		}
	case enums.TurnaroundPricingModelFlat:
		final = subtotal.Add(cfg.Turnaround.BasePrice)
		if !cfg.Turnaround.BasePrice.IsZero() {
			lines = append(lines, BreakdownLine{
				Kind:   LineKindTurnaround,
				Label:  cfg.Turnaround.Name,
				Amount: cfg.Turnaround.BasePrice,
			})
		}
	default:
		return nil, pkgerrors.New(pkgerrors.CodePricingModelMismatch,
			fmt.Sprintf("turnaround %q has unknown pricing model %q", cfg.Turnaround.Name, cfg.Turnaround.PricingModel))
	}

	// step 6
	if brokerDiscountPercent != nil && brokerDiscountPercent.IsPositive() {
		discount := final.Mul(*brokerDiscountPercent).Div(oneHundred).Neg()
		final = final.Add(discount)
		lines = append(lines, BreakdownLine{
			Kind:   LineKindBrokerDiscount,
			Label:  fmt.Sprintf("Broker discount (%s%%)", brokerDiscountPercent),
			Amount: discount,
		})
	}

	// step 7: the only rounding in the whole calculation
	total := final.Round(2)

	for i := range lines {
		lines[i].Amount = lines[i].Amount.Round(2)
	}
	reconcileLines(lines, total)

	unitPrice := decimal.Zero
	if qty > 0 {
		unitPrice = total.Div(decimal.NewFromInt(qty)).Round(4)
	}

	return &PriceBreakdown{
		Lines:     lines,
		Total:     total,
		Quantity:  qty,
		UnitPrice: unitPrice,
	}, nil
}
