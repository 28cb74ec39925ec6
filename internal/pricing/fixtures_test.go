package pricing

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/internal/catalog"
	"github.com/printworks/printshop-backend/pkg/db/models"
	dbtypes "github.com/printworks/printshop-backend/pkg/db/types"
	"github.com/printworks/printshop-backend/pkg/enums"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func i64(v int64) *int64 { return &v }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func subIDs(ids ...uuid.UUID) []uuid.UUID {
	return ids
}

// fixture holds a resolved business-card product with every option the
// engine tests need, plus the ids to select them by.
type fixture struct {
	resolved *catalog.ResolvedProduct

	stockID       uuid.UUID
	coatingNoneID uuid.UUID
	glossID       uuid.UUID
	singleID      uuid.UUID
	doubleID      uuid.UUID
	sizeID        uuid.UUID

	standardTT uuid.UUID // percentage x1.0
	rushTT     uuid.UUID // percentage x1.3
	nextDayTT  uuid.UUID // flat +50, requires no coating

	shrinkID    uuid.UUID // banding 100 per bundle @ 0.75
	cornerID    uuid.UUID // per-piece fee 20 + 0.01/pc, required radius sub-option
	radiusSmall uuid.UUID
	radiusLarge uuid.UUID
	proofID     uuid.UUID // flat 15
	packagingID uuid.UUID // 5% of pre-add-on subtotal
	numberingID uuid.UUID // 0.05 per unit
	brokenID    uuid.UUID // CUSTOM with malformed configuration
}

func newFixture(basePrice string) *fixture {
	f := &fixture{
		stockID:       uuid.New(),
		coatingNoneID: uuid.New(),
		glossID:       uuid.New(),
		singleID:      uuid.New(),
		doubleID:      uuid.New(),
		sizeID:        uuid.New(),
		standardTT:    uuid.New(),
		rushTT:        uuid.New(),
		nextDayTT:     uuid.New(),
		shrinkID:      uuid.New(),
		cornerID:      uuid.New(),
		radiusSmall:   uuid.New(),
		radiusLarge:   uuid.New(),
		proofID:       uuid.New(),
		packagingID:   uuid.New(),
		numberingID:   uuid.New(),
		brokenID:      uuid.New(),
	}

	stock := catalog.ResolvedPaperStock{
		ID:        f.stockID,
		Name:      "14pt Gloss Cover",
		IsDefault: true,
		Coatings: []catalog.ResolvedCoating{
			{ID: f.coatingNoneID, Name: "No Coating", IsNone: true, IsDefault: true},
			{ID: f.glossID, Name: "Gloss UV", PriceDelta: money("15.00")},
		},
		Sides: []catalog.ResolvedSides{
			{ID: f.singleID, Name: "Single Sided", IsDefault: true},
			{ID: f.doubleID, Name: "Double Sided", PriceDelta: money("20.00")},
		},
	}

	f.resolved = &catalog.ResolvedProduct{
		Product: models.Product{
			ID:        uuid.New(),
			Name:      "Business Cards",
			Category:  enums.ProductCategoryBusinessCards,
			BasePrice: money(basePrice),
			IsActive:  true,
		},
		PaperStocks: []catalog.ResolvedPaperStock{stock},
		Quantities: catalog.QuantityOptions{
			Values:       []int64{100, 250, 500, 1000, 2500},
			DefaultValue: 500,
			HasCustom:    true,
			CustomMin:    i64(50),
			CustomMax:    i64(25000),
		},
		Sizes: catalog.SizeOptions{
			Sizes: []catalog.ResolvedSize{
				{ID: f.sizeID, Name: "Standard", Width: money("3.5"), Height: money("2"), IsDefault: true},
			},
			HasCustom:       true,
			CustomMinWidth:  dec("1"),
			CustomMaxWidth:  dec("12"),
			CustomMinHeight: dec("1"),
			CustomMaxHeight: dec("12"),
		},
		AddOns: []catalog.ResolvedAddOn{
			{
				AddOn: models.AddOn{
					ID:            f.shrinkID,
					Name:          "Shrink Wrapping",
					PricingModel:  enums.PricingModelCustom,
					Configuration: json.RawMessage(`{"formula":"banding","items_per_bundle":100,"per_bundle_rate":"0.75"}`),
				},
			},
			{
				AddOn: models.AddOn{
					ID:            f.cornerID,
					Name:          "Corner Rounding",
					PricingModel:  enums.PricingModelCustom,
					Configuration: json.RawMessage(`{"formula":"per_piece_fee","base_fee":"20.00","per_piece_rate":"0.01"}`),
					SubOptions: []models.AddOnSubOption{
						{ID: f.radiusSmall, AddOnID: f.cornerID, Name: "1/8 inch radius", Required: true, ExclusionGroup: "radius"},
						{ID: f.radiusLarge, AddOnID: f.cornerID, Name: "1/4 inch radius", Required: true, ExclusionGroup: "radius"},
					},
				},
				SubOptions: []models.AddOnSubOption{
					{ID: f.radiusSmall, AddOnID: f.cornerID, Name: "1/8 inch radius", Required: true, ExclusionGroup: "radius"},
					{ID: f.radiusLarge, AddOnID: f.cornerID, Name: "1/4 inch radius", Required: true, ExclusionGroup: "radius"},
				},
			},
			{
				AddOn: models.AddOn{
					ID:           f.proofID,
					Name:         "Design Proof",
					PricingModel: enums.PricingModelFlat,
					FlatFee:      money("15.00"),
				},
			},
			{
				AddOn: models.AddOn{
					ID:           f.packagingID,
					Name:         "Premium Packaging",
					PricingModel: enums.PricingModelPercentage,
					Percentage:   money("5"),
				},
			},
			{
				AddOn: models.AddOn{
					ID:           f.numberingID,
					Name:         "Numbering",
					PricingModel: enums.PricingModelPerUnit,
					PerUnitRate:  money("0.05"),
				},
			},
			{
				AddOn: models.AddOn{
					ID:            f.brokenID,
					Name:          "Mystery Finish",
					PricingModel:  enums.PricingModelCustom,
					Configuration: json.RawMessage(`{"formula":"volume_tiers"}`),
				},
			},
		},
		Turnarounds: []catalog.ResolvedTurnaround{
			{
				Turnaround: models.TurnaroundTime{
					ID:              f.standardTT,
					Name:            "Standard 5-7 Days",
					PricingModel:    enums.TurnaroundPricingModelPercentage,
					PriceMultiplier: money("1.0"),
				},
				IsDefault: true,
			},
			{
				Turnaround: models.TurnaroundTime{
					ID:              f.rushTT,
					Name:            "Rush 2-3 Days",
					PricingModel:    enums.TurnaroundPricingModelPercentage,
					PriceMultiplier: money("1.3"),
				},
			},
			{
				Turnaround: models.TurnaroundTime{
					ID:                f.nextDayTT,
					Name:              "Next Day",
					PricingModel:      enums.TurnaroundPricingModelFlat,
					BasePrice:         money("50.00"),
					RequiresNoCoating: true,
				},
			},
		},
	}
	f.resolved.Product.SetupFee = decimal.Zero
	return f
}

// baseCandidate selects the defaults: first stock, no coating, single sided,
// quantity 500, standard size, standard turnaround, no add-ons.
func (f *fixture) baseCandidate() CandidateConfiguration {
	sizeID := f.sizeID
	return CandidateConfiguration{
		ProductID:        f.resolved.Product.ID,
		PaperStockID:     f.stockID,
		CoatingID:        f.coatingNoneID,
		SidesID:          f.singleID,
		Quantity:         500,
		SizeID:           &sizeID,
		TurnaroundTimeID: f.standardTT,
	}
}

// restrictGlossOnRush marks the gloss coating as restricted for the rush
// turnaround tier.
func (f *fixture) restrictGlossOnRush() {
	for i := range f.resolved.Turnarounds {
		if f.resolved.Turnarounds[i].Turnaround.ID == f.rushTT {
			f.resolved.Turnarounds[i].Turnaround.RestrictedCoatingIDs = dbtypes.UUIDArray{f.glossID}
		}
	}
}
