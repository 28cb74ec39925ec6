package models

import (
	"time"

	"github.com/google/uuid"
)

// TurnaroundTimeSet groups turnaround tiers for reuse across products.
type TurnaroundTimeSet struct {
	ID        uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string                  `gorm:"column:name;not null"`
	Items     []TurnaroundTimeSetItem `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

// TurnaroundTimeSetItem orders one turnaround tier inside a set.
type TurnaroundTimeSetItem struct {
	SetID            uuid.UUID `gorm:"column:set_id;type:uuid;primaryKey"`
	TurnaroundTimeID uuid.UUID `gorm:"column:turnaround_time_id;type:uuid;primaryKey"`
	SortOrder        int       `gorm:"column:sort_order;not null;default:0"`
	IsDefault        bool      `gorm:"column:is_default;not null;default:false"`

	TurnaroundTime *TurnaroundTime `gorm:"foreignKey:TurnaroundTimeID"`
}
