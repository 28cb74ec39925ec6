package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/internal/catalog"
	"github.com/printworks/printshop-backend/pkg/db/models"
)

// AddOnSelection is one chosen add-on with its chosen sub-options.
type AddOnSelection struct {
	AddOnID      uuid.UUID   `json:"add_on_id"`
	SubOptionIDs []uuid.UUID `json:"sub_option_ids,omitempty"`
}

// CandidateConfiguration is a customer-submitted configuration before
// validation. Quantity is treated as custom when it is not one of the
// group's listed values; size is custom when no SizeID is given.
type CandidateConfiguration struct {
	ProductID        uuid.UUID        `json:"product_id"`
	PaperStockID     uuid.UUID        `json:"paper_stock_id"`
	CoatingID        uuid.UUID        `json:"coating_id"`
	SidesID          uuid.UUID        `json:"sides_id"`
	Quantity         int64            `json:"quantity"`
	SizeID           *uuid.UUID       `json:"size_id,omitempty"`
	CustomWidth      *decimal.Decimal `json:"custom_width,omitempty"`
	CustomHeight     *decimal.Decimal `json:"custom_height,omitempty"`
	TurnaroundTimeID uuid.UUID        `json:"turnaround_time_id"`
	AddOns           []AddOnSelection `json:"add_ons,omitempty"`
}

// SizeSelection is the resolved dimension choice.
type SizeSelection struct {
	Name   string          `json:"name"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
	Custom bool            `json:"custom"`
}

// ValidatedAddOn pairs an add-on with its validated sub-option choices.
type ValidatedAddOn struct {
	AddOn      models.AddOn
	SubOptions []models.AddOnSubOption
}

// ValidatedConfiguration is the all-or-nothing output of validation. It
// carries everything the calculator needs so pricing never goes back to
// the database.
type ValidatedConfiguration struct {
	Product    models.Product
	PaperStock catalog.ResolvedPaperStock
	Coating    catalog.ResolvedCoating
	Sides      catalog.ResolvedSides
	Quantity   int64
	Size       SizeSelection
	Turnaround models.TurnaroundTime
	AddOns     []ValidatedAddOn
}
