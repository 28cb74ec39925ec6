package models

import (
	"time"

	"github.com/google/uuid"
)

// AddOnSet groups add-ons for reuse across products.
type AddOnSet struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string         `gorm:"column:name;not null"`
	Items     []AddOnSetItem `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// AddOnSetItem orders one add-on inside a set.
type AddOnSetItem struct {
	SetID     uuid.UUID `gorm:"column:set_id;type:uuid;primaryKey"`
	AddOnID   uuid.UUID `gorm:"column:add_on_id;type:uuid;primaryKey"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`

	AddOn *AddOn `gorm:"foreignKey:AddOnID"`
}
