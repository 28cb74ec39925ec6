package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/pkg/db/models"
)

// ResolvedProduct is the fully-joined, ordered view of a product's options.
// Every option list is non-empty and carries exactly one default; the resolver
// refuses to return anything less.
type ResolvedProduct struct {
	Product models.Product

	PaperStocks []ResolvedPaperStock
	Quantities  QuantityOptions
	Sizes       SizeOptions
	AddOns      []ResolvedAddOn
	Turnarounds []ResolvedTurnaround
}

// ResolvedPaperStock flattens a stock with its offered coatings and sides.
type ResolvedPaperStock struct {
	ID         uuid.UUID
	Name       string
	PriceDelta decimal.Decimal
	IsDefault  bool

	Coatings []ResolvedCoating
	Sides    []ResolvedSides
}

// ResolvedCoating is one coating offered on a specific paper stock.
type ResolvedCoating struct {
	ID         uuid.UUID
	Name       string
	IsNone     bool
	PriceDelta decimal.Decimal
	IsDefault  bool
}

// ResolvedSides is one sides option offered on a specific paper stock.
type ResolvedSides struct {
	ID         uuid.UUID
	Name       string
	PriceDelta decimal.Decimal
	IsDefault  bool
}

// QuantityOptions carries the discrete values and the optional custom range.
type QuantityOptions struct {
	Values       []int64
	DefaultValue int64
	HasCustom    bool
	CustomMin    *int64
	CustomMax    *int64
}

// Allows reports whether qty is a listed discrete value.
func (q QuantityOptions) Allows(qty int64) bool {
	for _, v := range q.Values {
		if v == qty {
			return true
		}
	}
	return false
}

// SizeOptions carries named sizes and the optional custom dimension ranges.
type SizeOptions struct {
	Sizes           []ResolvedSize
	HasCustom       bool
	CustomMinWidth  *decimal.Decimal
	CustomMaxWidth  *decimal.Decimal
	CustomMinHeight *decimal.Decimal
	CustomMaxHeight *decimal.Decimal
}

// ResolvedSize is one named dimension entry.
type ResolvedSize struct {
	ID        uuid.UUID
	Name      string
	Width     decimal.Decimal
	Height    decimal.Decimal
	IsDefault bool
}

// ResolvedAddOn is an add-on with its ordered sub-options.
type ResolvedAddOn struct {
	AddOn      models.AddOn
	SubOptions []models.AddOnSubOption
}

// ResolvedTurnaround is a turnaround tier with its default flag from the set.
type ResolvedTurnaround struct {
	Turnaround models.TurnaroundTime
	IsDefault  bool
}

// FindPaperStock returns the resolved stock with the given id, if offered.
func (p *ResolvedProduct) FindPaperStock(id uuid.UUID) (ResolvedPaperStock, bool) {
	for _, ps := range p.PaperStocks {
		if ps.ID == id {
			return ps, true
		}
	}
	return ResolvedPaperStock{}, false
}

// FindAddOn returns the resolved add-on with the given id, if offered.
func (p *ResolvedProduct) FindAddOn(id uuid.UUID) (ResolvedAddOn, bool) {
	for _, a := range p.AddOns {
		if a.AddOn.ID == id {
			return a, true
		}
	}
	return ResolvedAddOn{}, false
}

// FindTurnaround returns the resolved turnaround with the given id, if offered.
func (p *ResolvedProduct) FindTurnaround(id uuid.UUID) (ResolvedTurnaround, bool) {
	for _, tt := range p.Turnarounds {
		if tt.Turnaround.ID == id {
			return tt, true
		}
	}
	return ResolvedTurnaround{}, false
}

// FindSize returns the named size with the given id, if offered.
func (s SizeOptions) FindSize(id uuid.UUID) (ResolvedSize, bool) {
	for _, sz := range s.Sizes {
		if sz.ID == id {
			return sz, true
		}
	}
	return ResolvedSize{}, false
}
