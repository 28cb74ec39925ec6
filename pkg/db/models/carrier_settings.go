package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/pkg/enums"
)

// CarrierSettings holds per-carrier shipping configuration. Quoted base rates
// are marked up by MarkupPercent before being shown to customers.
type CarrierSettings struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Carrier        enums.Carrier   `gorm:"column:carrier;not null;uniqueIndex"`
	MarkupPercent  decimal.Decimal `gorm:"column:markup_percent;type:numeric(8,4);not null;default:0"`
	Enabled        bool            `gorm:"column:enabled;not null;default:true"`
	ServiceRegions pq.StringArray  `gorm:"column:service_regions;type:text[]"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// ServesRegion reports whether the carrier covers the given region code.
// An empty ServiceRegions list means nationwide coverage.
func (c *CarrierSettings) ServesRegion(region string) bool {
	if len(c.ServiceRegions) == 0 {
		return true
	}
	for _, r := range c.ServiceRegions {
		if r == region {
			return true
		}
	}
	return false
}
