package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/pkg/enums"
)

// AddOn is a finishing or service option attached to products through add-on
// sets. Pricing behavior is keyed by PricingModel; Configuration holds the
// model-specific parameters as raw JSON and is parsed by pkg/pricing.
type AddOn struct {
	ID                       uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                     string             `gorm:"column:name;not null"`
	PricingModel             enums.PricingModel `gorm:"column:pricing_model;not null"`
	FlatFee                  decimal.Decimal    `gorm:"column:flat_fee;type:numeric(12,2);not null;default:0"`
	Percentage               decimal.Decimal    `gorm:"column:percentage;type:numeric(8,4);not null;default:0"`
	PerUnitRate              decimal.Decimal    `gorm:"column:per_unit_rate;type:numeric(12,4);not null;default:0"`
	Configuration            json.RawMessage    `gorm:"column:configuration;type:jsonb"`
	AdditionalTurnaroundDays int                `gorm:"column:additional_turnaround_days;not null;default:0"`
	IsActive                 bool               `gorm:"column:is_active;not null;default:true"`

	SubOptions []AddOnSubOption `gorm:"foreignKey:AddOnID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// AddOnSubOption is a selectable variant under an add-on, e.g. hole position
// for drilling. Sub-options sharing an ExclusionGroup are mutually exclusive;
// Required means exactly one must be chosen when the parent add-on is selected.
type AddOnSubOption struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AddOnID        uuid.UUID       `gorm:"column:add_on_id;type:uuid;not null;index"`
	Name           string          `gorm:"column:name;not null"`
	PriceDelta     decimal.Decimal `gorm:"column:price_delta;type:numeric(12,2);not null;default:0"`
	Required       bool            `gorm:"column:required;not null;default:false"`
	ExclusionGroup string          `gorm:"column:exclusion_group"`
	SortOrder      int             `gorm:"column:sort_order;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
