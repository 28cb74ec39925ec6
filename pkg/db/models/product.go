package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/pkg/enums"
)

// Product represents a configurable print product as set up by an operator.
// Customers read it through the catalog resolver; only operators edit it.
type Product struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string                `gorm:"column:name;not null"`
	Slug            string                `gorm:"column:slug;not null;uniqueIndex"`
	Category        enums.ProductCategory `gorm:"column:category;not null"`
	BasePrice       decimal.Decimal       `gorm:"column:base_price;type:numeric(12,2);not null"`
	SetupFee        decimal.Decimal       `gorm:"column:setup_fee;type:numeric(12,2);not null;default:0"`
	RushEligible    bool                  `gorm:"column:rush_eligible;not null;default:false"`
	GangRunEligible bool                  `gorm:"column:gang_run_eligible;not null;default:false"`
	IsActive        bool                  `gorm:"column:is_active;not null;default:true"`

	PaperStockSetID     uuid.UUID `gorm:"column:paper_stock_set_id;type:uuid;not null"`
	QuantityGroupID     uuid.UUID `gorm:"column:quantity_group_id;type:uuid;not null"`
	SizeGroupID         uuid.UUID `gorm:"column:size_group_id;type:uuid;not null"`
	TurnaroundTimeSetID uuid.UUID `gorm:"column:turnaround_time_set_id;type:uuid;not null"`

	PaperStockSet     *PaperStockSet     `gorm:"foreignKey:PaperStockSetID"`
	QuantityGroup     *QuantityGroup     `gorm:"foreignKey:QuantityGroupID"`
	SizeGroup         *SizeGroup         `gorm:"foreignKey:SizeGroupID"`
	TurnaroundTimeSet *TurnaroundTimeSet `gorm:"foreignKey:TurnaroundTimeSetID"`
	AddOnSets         []AddOnSet         `gorm:"many2many:product_add_on_sets"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
