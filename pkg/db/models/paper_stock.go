package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaperStock is a sellable paper option. Coating and sides compatibility is
// modeled as sub-relations so each stock only offers what the press supports.
type PaperStock struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name       string          `gorm:"column:name;not null"`
	PriceDelta decimal.Decimal `gorm:"column:price_delta;type:numeric(12,2);not null;default:0"`
	IsActive   bool            `gorm:"column:is_active;not null;default:true"`

	Coatings []PaperStockCoating `gorm:"foreignKey:PaperStockID;constraint:OnDelete:CASCADE"`
	Sides    []PaperStockSides   `gorm:"foreignKey:PaperStockID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Coating is a finish option referenced by paper stock compatibility rows and
// turnaround restrictions. The "No Coating" row always exists.
type Coating struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
	IsNone    bool      `gorm:"column:is_none;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// SidesOption captures single/double sided printing variants.
type SidesOption struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// PaperStockCoating lists a coating offered on a stock, with its price delta.
type PaperStockCoating struct {
	PaperStockID uuid.UUID       `gorm:"column:paper_stock_id;type:uuid;primaryKey"`
	CoatingID    uuid.UUID       `gorm:"column:coating_id;type:uuid;primaryKey"`
	PriceDelta   decimal.Decimal `gorm:"column:price_delta;type:numeric(12,2);not null;default:0"`
	IsDefault    bool            `gorm:"column:is_default;not null;default:false"`

	Coating *Coating `gorm:"foreignKey:CoatingID"`
}

// PaperStockSides lists a sides option offered on a stock, with its price delta.
type PaperStockSides struct {
	PaperStockID uuid.UUID       `gorm:"column:paper_stock_id;type:uuid;primaryKey"`
	SidesID      uuid.UUID       `gorm:"column:sides_id;type:uuid;primaryKey"`
	PriceDelta   decimal.Decimal `gorm:"column:price_delta;type:numeric(12,2);not null;default:0"`
	IsDefault    bool            `gorm:"column:is_default;not null;default:false"`

	Sides *SidesOption `gorm:"foreignKey:SidesID"`
}
