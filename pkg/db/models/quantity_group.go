package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// QuantityGroup is an ordered list of discrete quantity values plus an
// optional custom entry bounded by CustomMin/CustomMax.
type QuantityGroup struct {
	ID           uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string        `gorm:"column:name;not null"`
	Values       pq.Int64Array `gorm:"column:values;type:bigint[];not null"`
	DefaultValue int64         `gorm:"column:default_value;not null"`
	HasCustom    bool          `gorm:"column:has_custom;not null;default:false"`
	CustomMin    *int64        `gorm:"column:custom_min"`
	CustomMax    *int64        `gorm:"column:custom_max"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
