package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a customer account. Broker accounts receive category-level
// discounts configured in BrokerDiscount rows.
type Account struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CompanyName  string    `gorm:"column:company_name"`
	IsBroker     bool      `gorm:"column:is_broker;not null;default:false"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
