package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SizeGroup is the dimension analog of QuantityGroup: named sizes plus an
// optional custom entry bounded per axis, in inches.
type SizeGroup struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string           `gorm:"column:name;not null"`
	Sizes           []SizeGroupSize  `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	HasCustom       bool             `gorm:"column:has_custom;not null;default:false"`
	CustomMinWidth  *decimal.Decimal `gorm:"column:custom_min_width;type:numeric(8,3)"`
	CustomMaxWidth  *decimal.Decimal `gorm:"column:custom_max_width;type:numeric(8,3)"`
	CustomMinHeight *decimal.Decimal `gorm:"column:custom_min_height;type:numeric(8,3)"`
	CustomMaxHeight *decimal.Decimal `gorm:"column:custom_max_height;type:numeric(8,3)"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// SizeGroupSize is one named dimension entry inside a size group.
type SizeGroupSize struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupID   uuid.UUID       `gorm:"column:group_id;type:uuid;not null;index"`
	Name      string          `gorm:"column:name;not null"`
	Width     decimal.Decimal `gorm:"column:width;type:numeric(8,3);not null"`
	Height    decimal.Decimal `gorm:"column:height;type:numeric(8,3);not null"`
	SortOrder int             `gorm:"column:sort_order;not null;default:0"`
	IsDefault bool            `gorm:"column:is_default;not null;default:false"`
}
