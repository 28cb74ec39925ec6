package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/printworks/printshop-backend/pkg/db/models"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
)

// Service resolves a product's option sets into a complete, ordered catalog
// view. A product that cannot offer every dimension is never returned to
// callers; it surfaces as an incomplete-catalog failure instead.
type Service interface {
	Resolve(ctx context.Context, productID uuid.UUID) (*ResolvedProduct, error)
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService constructs the catalog resolver.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) Resolve(ctx context.Context, productID uuid.UUID) (*ResolvedProduct, error) {
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	resolved, missing := buildResolved(product)
	if len(missing) > 0 {
		ctx = s.logg.WithProductID(ctx, productID.String())
		ctx = s.logg.WithField(ctx, "missing_dimensions", missing)
		s.logg.Error(ctx, "catalog.incomplete", nil)
		return nil, pkgerrors.New(pkgerrors.CodeIncompleteCatalog,
			fmt.Sprintf("product %s is missing option dimensions: %v", productID, missing))
	}
	return resolved, nil
}

// buildResolved flattens the preloaded relations and reports which option
// dimensions came up empty.
func buildResolved(product *models.Product) (*ResolvedProduct, []string) {
	out := &ResolvedProduct{Product: *product}
	var missing []string

	if product.PaperStockSet != nil {
		for _, item := range product.PaperStockSet.Items {
			if item.PaperStock == nil || !item.PaperStock.IsActive {
				continue
			}
			resolvedStock := resolvePaperStock(item)
			if len(resolvedStock.Coatings) == 0 || len(resolvedStock.Sides) == 0 {
				// A stock without coating or sides rows cannot be configured.
				continue
			}
			out.PaperStocks = append(out.PaperStocks, resolvedStock)
		}
	}
	if len(out.PaperStocks) == 0 {
		missing = append(missing, "paper_stocks")
	} else {
		annotateStockDefaults(out.PaperStocks)
	}

	if product.QuantityGroup != nil && len(product.QuantityGroup.Values) > 0 {
		qg := product.QuantityGroup
		out.Quantities = QuantityOptions{
			Values:       append([]int64(nil), qg.Values...),
			DefaultValue: qg.DefaultValue,
			HasCustom:    qg.HasCustom,
			CustomMin:    qg.CustomMin,
			CustomMax:    qg.CustomMax,
		}
		if !out.Quantities.Allows(out.Quantities.DefaultValue) {
			out.Quantities.DefaultValue = out.Quantities.Values[0]
		}
	} else {
		missing = append(missing, "quantities")
	}

	if product.SizeGroup != nil && (len(product.SizeGroup.Sizes) > 0 || product.SizeGroup.HasCustom) {
		sg := product.SizeGroup
		opts := SizeOptions{
			HasCustom:       sg.HasCustom,
			CustomMinWidth:  sg.CustomMinWidth,
			CustomMaxWidth:  sg.CustomMaxWidth,
			CustomMinHeight: sg.CustomMinHeight,
			CustomMaxHeight: sg.CustomMaxHeight,
		}
		for _, sz := range sg.Sizes {
			opts.Sizes = append(opts.Sizes, ResolvedSize{
				ID:        sz.ID,
				Name:      sz.Name,
				Width:     sz.Width,
				Height:    sz.Height,
				IsDefault: sz.IsDefault,
			})
		}
		annotateSizeDefaults(opts.Sizes)
		out.Sizes = opts
	} else {
		missing = append(missing, "sizes")
	}

	for _, set := range product.AddOnSets {
		for _, item := range set.Items {
			if item.AddOn == nil || !item.AddOn.IsActive {
				continue
			}
			out.AddOns = append(out.AddOns, ResolvedAddOn{
				AddOn:      *item.AddOn,
				SubOptions: item.AddOn.SubOptions,
			})
		}
	}
	// Add-ons are optional: a product with none is still sellable.

	if product.TurnaroundTimeSet != nil {
		for _, item := range product.TurnaroundTimeSet.Items {
			if item.TurnaroundTime == nil || !item.TurnaroundTime.IsActive {
				continue
			}
			out.Turnarounds = append(out.Turnarounds, ResolvedTurnaround{
				Turnaround: *item.TurnaroundTime,
				IsDefault:  item.IsDefault,
			})
		}
	}
	if len(out.Turnarounds) == 0 {
		missing = append(missing, "turnaround_times")
	} else {
		annotateTurnaroundDefaults(out.Turnarounds)
	}

	return out, missing
}

func resolvePaperStock(item models.PaperStockSetItem) ResolvedPaperStock {
	stock := item.PaperStock
	resolved := ResolvedPaperStock{
		ID:         stock.ID,
		Name:       stock.Name,
		PriceDelta: stock.PriceDelta,
		IsDefault:  item.IsDefault,
	}
	for _, c := range stock.Coatings {
		if c.Coating == nil {
			continue
		}
		resolved.Coatings = append(resolved.Coatings, ResolvedCoating{
			ID:         c.CoatingID,
			Name:       c.Coating.Name,
			IsNone:     c.Coating.IsNone,
			PriceDelta: c.PriceDelta,
			IsDefault:  c.IsDefault,
		})
	}
	for _, sd := range stock.Sides {
		if sd.Sides == nil {
			continue
		}
		resolved.Sides = append(resolved.Sides, ResolvedSides{
			ID:         sd.SidesID,
			Name:       sd.Sides.Name,
			PriceDelta: sd.PriceDelta,
			IsDefault:  sd.IsDefault,
		})
	}
	annotateCoatingDefaults(resolved.Coatings)
	annotateSidesDefaults(resolved.Sides)
	return resolved
}

// Default annotation: the first flagged entry wins; when nothing is flagged
// the first entry becomes the default, so every list has exactly one.

func annotateStockDefaults(stocks []ResolvedPaperStock) {
	found := false
	for i := range stocks {
		if stocks[i].IsDefault && !found {
			found = true
			continue
		}
		stocks[i].IsDefault = false
	}
	if !found && len(stocks) > 0 {
		stocks[0].IsDefault = true
	}
}

func annotateCoatingDefaults(coatings []ResolvedCoating) {
	found := false
	for i := range coatings {
		if coatings[i].IsDefault && !found {
			found = true
			continue
		}
		coatings[i].IsDefault = false
	}
	if !found && len(coatings) > 0 {
		coatings[0].IsDefault = true
	}
}

func annotateSidesDefaults(sides []ResolvedSides) {
	found := false
	for i := range sides {
		if sides[i].IsDefault && !found {
			found = true
			continue
		}
		sides[i].IsDefault = false
	}
	if !found && len(sides) > 0 {
		sides[0].IsDefault = true
	}
}

func annotateSizeDefaults(sizes []ResolvedSize) {
	found := false
	for i := range sizes {
		if sizes[i].IsDefault && !found {
			found = true
			continue
		}
		sizes[i].IsDefault = false
	}
	if !found && len(sizes) > 0 {
		sizes[0].IsDefault = true
	}
}

func annotateTurnaroundDefaults(turnarounds []ResolvedTurnaround) {
	found := false
	for i := range turnarounds {
		if turnarounds[i].IsDefault && !found {
			found = true
			continue
		}
		turnarounds[i].IsDefault = false
	}
	if !found && len(turnarounds) > 0 {
		turnarounds[0].IsDefault = true
	}
}
