package models

import (
	"time"

	"github.com/google/uuid"
)

// PaperStockSet is a named, ordered, reusable collection of paper stocks
// shared across products.
type PaperStockSet struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string              `gorm:"column:name;not null"`
	Items     []PaperStockSetItem `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// PaperStockSetItem orders one paper stock inside a set.
type PaperStockSetItem struct {
	SetID        uuid.UUID `gorm:"column:set_id;type:uuid;primaryKey"`
	PaperStockID uuid.UUID `gorm:"column:paper_stock_id;type:uuid;primaryKey"`
	SortOrder    int       `gorm:"column:sort_order;not null;default:0"`
	IsDefault    bool      `gorm:"column:is_default;not null;default:false"`

	PaperStock *PaperStock `gorm:"foreignKey:PaperStockID"`
}
