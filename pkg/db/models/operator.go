package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/printworks/printshop-backend/pkg/enums"
)

// Operator is a staff user for the admin surface.
type Operator struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string             `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string             `gorm:"column:password_hash;not null"`
	Role         enums.OperatorRole `gorm:"column:role;not null"`
	IsActive     bool               `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
