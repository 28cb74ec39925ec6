package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/printworks/printshop-backend/pkg/db/types"
	"github.com/printworks/printshop-backend/pkg/enums"
)

// TurnaroundTime is a production speed tier. Flat tiers add BasePrice;
// percentage tiers multiply the pre-turnaround subtotal by PriceMultiplier.
type TurnaroundTime struct {
	ID              uuid.UUID                    `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string                       `gorm:"column:name;not null"`
	DaysMin         int                          `gorm:"column:days_min;not null"`
	DaysMax         int                          `gorm:"column:days_max;not null"`
	PricingModel    enums.TurnaroundPricingModel `gorm:"column:pricing_model;not null"`
	BasePrice       decimal.Decimal              `gorm:"column:base_price;type:numeric(12,2);not null;default:0"`
	PriceMultiplier decimal.Decimal              `gorm:"column:price_multiplier;type:numeric(8,4);not null;default:1"`

	// Compatibility restrictions checked by the validator before pricing.
	RequiresNoCoating    bool              `gorm:"column:requires_no_coating;not null;default:false"`
	RestrictedCoatingIDs dbtypes.UUIDArray `gorm:"column:restricted_coating_ids;type:uuid[]"`

	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
