package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/pkg/enums"
)

// BrokerDiscount grants a broker account a percentage discount on one product
// category. At most one row exists per (account, category).
type BrokerDiscount struct {
	ID        uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AccountID uuid.UUID             `gorm:"column:account_id;type:uuid;not null;uniqueIndex:idx_broker_discount_account_category"`
	Category  enums.ProductCategory `gorm:"column:category;not null;uniqueIndex:idx_broker_discount_account_category"`
	Percent   decimal.Decimal       `gorm:"column:percent;type:numeric(8,4);not null"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
