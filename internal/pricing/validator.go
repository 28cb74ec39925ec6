package pricing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/internal/catalog"
	"github.com/printworks/printshop-backend/pkg/db/models"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
)

// Validate checks a candidate configuration against a resolved catalog.
// Rules run in a fixed order and the first failure wins, so error messages
// are reproducible:
//
//  1. every selected id must belong to the product's resolved option sets
//  2. a quantity that is not a listed value must fall inside the custom range
//  3. a custom size must fall inside the group's width/height ranges
//  4. the coating and sides must be offered on the chosen paper stock
//  5. the turnaround's coating restrictions must hold
//  6. each add-on's required sub-options must be chosen, one per
//     exclusion group at most
//
// Validation is all-or-nothing; no partially validated result is returned.
func Validate(resolved *catalog.ResolvedProduct, candidate CandidateConfiguration) (*ValidatedConfiguration, error) {
	out := &ValidatedConfiguration{Product: resolved.Product}

	// rule 1: membership
	stock, ok := resolved.FindPaperStock(candidate.PaperStockID)
	if !ok {
		return nil, invalidOption("paper_stock_id", candidate.PaperStockID)
	}
	out.PaperStock = stock

	if !coatingOfferedAnywhere(resolved, candidate.CoatingID) {
		return nil, invalidOption("coating_id", candidate.CoatingID)
	}
	if !sidesOfferedAnywhere(resolved, candidate.SidesID) {
		return nil, invalidOption("sides_id", candidate.SidesID)
	}

	turnaround, ok := resolved.FindTurnaround(candidate.TurnaroundTimeID)
	if !ok {
		return nil, invalidOption("turnaround_time_id", candidate.TurnaroundTimeID)
	}
	out.Turnaround = turnaround.Turnaround

	validatedAddOns := make([]ValidatedAddOn, 0, len(candidate.AddOns))
	for _, sel := range candidate.AddOns {
		resolvedAddOn, ok := resolved.FindAddOn(sel.AddOnID)
		if !ok {
			return nil, invalidOption("add_on_id", sel.AddOnID)
		}
		chosen := make([]models.AddOnSubOption, 0, len(sel.SubOptionIDs))
		for _, subID := range sel.SubOptionIDs {
			sub, ok := findSubOption(resolvedAddOn, subID)
			if !ok {
				return nil, invalidOption("sub_option_id", subID)
			}
			chosen = append(chosen, sub)
		}
		validatedAddOns = append(validatedAddOns, ValidatedAddOn{
			AddOn:      resolvedAddOn.AddOn,
			SubOptions: chosen,
		})
	}

	if candidate.SizeID != nil {
		if _, ok := resolved.Sizes.FindSize(*candidate.SizeID); !ok {
			return nil, invalidOption("size_id", *candidate.SizeID)
		}
	}

	// rule 2: quantity (listed value, or custom within range)
	qty, err := validateQuantity(resolved.Quantities, candidate.Quantity)
	if err != nil {
		return nil, err
	}
	out.Quantity = qty

	// rule 3: size (named, or custom within range)
	size, err := validateSize(resolved.Sizes, candidate)
	if err != nil {
		return nil, err
	}
	out.Size = size

	// rule 4: coating/sides compatibility with the chosen stock
	coating, ok := findCoating(stock, candidate.CoatingID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeIncompatibleOption,
			fmt.Sprintf("coating %s is not offered on paper stock %q", candidate.CoatingID, stock.Name)).
			WithDetails(map[string]any{"field": "coating_id"})
	}
	out.Coating = coating

	sides, ok := findSides(stock, candidate.SidesID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeIncompatibleOption,
			fmt.Sprintf("sides option %s is not offered on paper stock %q", candidate.SidesID, stock.Name)).
			WithDetails(map[string]any{"field": "sides_id"})
	}
	out.Sides = sides

	// rule 5: turnaround coating restrictions
	if err := validateTurnaroundCoating(out.Turnaround, coating); err != nil {
		return nil, err
	}

	// rule 6: add-on sub-option constraints
	for _, va := range validatedAddOns {
		if err := validateSubOptions(va); err != nil {
			return nil, err
		}
	}
	out.AddOns = validatedAddOns

	return out, nil
}

func invalidOption(field string, id uuid.UUID) error {
	return pkgerrors.New(pkgerrors.CodeInvalidOption,
		fmt.Sprintf("%s %s is not available for this product", field, id)).
		WithDetails(map[string]any{"field": field})
}

func coatingOfferedAnywhere(resolved *catalog.ResolvedProduct, id uuid.UUID) bool {
	for _, ps := range resolved.PaperStocks {
		for _, c := range ps.Coatings {
			if c.ID == id {
				return true
			}
		}
	}
	return false
}

func sidesOfferedAnywhere(resolved *catalog.ResolvedProduct, id uuid.UUID) bool {
	for _, ps := range resolved.PaperStocks {
		for _, s := range ps.Sides {
			if s.ID == id {
				return true
			}
		}
	}
	return false
}

func findCoating(stock catalog.ResolvedPaperStock, id uuid.UUID) (catalog.ResolvedCoating, bool) {
	for _, c := range stock.Coatings {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.ResolvedCoating{}, false
}

func findSides(stock catalog.ResolvedPaperStock, id uuid.UUID) (catalog.ResolvedSides, bool) {
	for _, s := range stock.Sides {
		if s.ID == id {
			return s, true
		}
	}
	return catalog.ResolvedSides{}, false
}

func findSubOption(addOn catalog.ResolvedAddOn, id uuid.UUID) (models.AddOnSubOption, bool) {
	for _, sub := range addOn.SubOptions {
		if sub.ID == id {
			return sub, true
		}
	}
	return models.AddOnSubOption{}, false
}

func validateQuantity(opts catalog.QuantityOptions, qty int64) (int64, error) {
	if opts.Allows(qty) {
		return qty, nil
	}
	if !opts.HasCustom {
		return 0, pkgerrors.New(pkgerrors.CodeInvalidOption,
			fmt.Sprintf("quantity %d is not offered for this product", qty)).
			WithDetails(map[string]any{"field": "quantity"})
	}
	if opts.CustomMin != nil && qty < *opts.CustomMin {
		return 0, quantityOutOfRange(qty, opts)
	}
	if opts.CustomMax != nil && qty > *opts.CustomMax {
		return 0, quantityOutOfRange(qty, opts)
	}
	if qty <= 0 {
		return 0, quantityOutOfRange(qty, opts)
	}
	return qty, nil
}

func quantityOutOfRange(qty int64, opts catalog.QuantityOptions) error {
	details := map[string]any{"field": "quantity"}
	if opts.CustomMin != nil {
		details["min"] = *opts.CustomMin
	}
	if opts.CustomMax != nil {
		details["max"] = *opts.CustomMax
	}
	return pkgerrors.New(pkgerrors.CodeOutOfRange,
		fmt.Sprintf("custom quantity %d is outside the allowed range", qty)).
		WithDetails(details)
}

func validateSize(opts catalog.SizeOptions, candidate CandidateConfiguration) (SizeSelection, error) {
	if candidate.SizeID != nil {
		sz, _ := opts.FindSize(*candidate.SizeID)
		return SizeSelection{Name: sz.Name, Width: sz.Width, Height: sz.Height}, nil
	}

	if candidate.CustomWidth == nil || candidate.CustomHeight == nil {
		return SizeSelection{}, pkgerrors.New(pkgerrors.CodeInvalidOption,
			"a size id or custom dimensions are required").
			WithDetails(map[string]any{"field": "size_id"})
	}
	if !opts.HasCustom {
		return SizeSelection{}, pkgerrors.New(pkgerrors.CodeInvalidOption,
			"custom sizes are not offered for this product").
			WithDetails(map[string]any{"field": "custom_width"})
	}

	w, h := *candidate.CustomWidth, *candidate.CustomHeight
	if outOfBounds(w, opts.CustomMinWidth, opts.CustomMaxWidth) {
		return SizeSelection{}, sizeOutOfRange("custom_width", w, opts.CustomMinWidth, opts.CustomMaxWidth)
	}
	if outOfBounds(h, opts.CustomMinHeight, opts.CustomMaxHeight) {
		return SizeSelection{}, sizeOutOfRange("custom_height", h, opts.CustomMinHeight, opts.CustomMaxHeight)
	}

	return SizeSelection{
		Name:   fmt.Sprintf(`Custom %s x %s"`, w, h),
		Width:  w,
		Height: h,
		Custom: true,
	}, nil
}

func outOfBounds(v decimal.Decimal, min, max *decimal.Decimal) bool {
	if min != nil && v.LessThan(*min) {
		return true
	}
	if max != nil && v.GreaterThan(*max) {
		return true
	}
	return v.LessThanOrEqual(decimal.Zero)
}

func sizeOutOfRange(field string, v decimal.Decimal, min, max *decimal.Decimal) error {
	details := map[string]any{"field": field}
	if min != nil {
		details["min"] = min.String()
	}
	if max != nil {
		details["max"] = max.String()
	}
	return pkgerrors.New(pkgerrors.CodeOutOfRange,
		fmt.Sprintf("custom dimension %s is outside the allowed range", v)).
		WithDetails(details)
}

func validateTurnaroundCoating(tt models.TurnaroundTime, coating catalog.ResolvedCoating) error {
	if coating.IsNone {
		// "No Coating" is acceptable for every turnaround.
		return nil
	}
	if tt.RequiresNoCoating {
		return pkgerrors.New(pkgerrors.CodeIncompatibleTurnaround,
			fmt.Sprintf("turnaround %q requires no coating but %q was selected", tt.Name, coating.Name)).
			WithDetails(map[string]any{"field": "turnaround_time_id"})
	}
	if tt.RestrictedCoatingIDs.Contains(coating.ID) {
		return pkgerrors.New(pkgerrors.CodeIncompatibleTurnaround,
			fmt.Sprintf("turnaround %q is not available with coating %q", tt.Name, coating.Name)).
			WithDetails(map[string]any{"field": "turnaround_time_id"})
	}
	return nil
}

func validateSubOptions(va ValidatedAddOn) error {
	chosen := map[uuid.UUID]bool{}
	groupCounts := map[string]int{}
	for _, sub := range va.SubOptions {
		chosen[sub.ID] = true
		if sub.ExclusionGroup != "" {
			groupCounts[sub.ExclusionGroup]++
		}
	}

	for group, n := range groupCounts {
		if n > 1 {
			return pkgerrors.New(pkgerrors.CodeIncompatibleOption,
				fmt.Sprintf("add-on %q allows only one choice in group %q", va.AddOn.Name, group)).
				WithDetails(map[string]any{"field": "sub_option_ids"})
		}
	}

	// A required sub-option marks its exclusion group as mandatory: exactly
	// one choice from that group must be present.
	requiredGroups := map[string]bool{}
	for _, sub := range va.AddOn.SubOptions {
		if sub.Required {
			if sub.ExclusionGroup != "" {
				requiredGroups[sub.ExclusionGroup] = true
			} else if !chosen[sub.ID] {
				return missingSubOption(va.AddOn.Name)
			}
		}
	}
	for group := range requiredGroups {
		if groupCounts[group] == 0 {
			return missingSubOption(va.AddOn.Name)
		}
	}
	return nil
}

func missingSubOption(addOnName string) error {
	return pkgerrors.New(pkgerrors.CodeIncompatibleOption,
		fmt.Sprintf("add-on %q requires a sub-option selection", addOnName)).
		WithDetails(map[string]any{"field": "sub_option_ids"})
}
