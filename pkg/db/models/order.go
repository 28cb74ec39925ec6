package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/pkg/enums"
)

// Order is a placed purchase. Monetary totals are frozen at checkout; status
// moves through the lifecycle enforced by the orders service.
type Order struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber int64             `gorm:"column:order_number;not null;uniqueIndex;default:nextval('order_numbers')"`
	AccountID   uuid.UUID         `gorm:"column:account_id;type:uuid;not null;index"`
	Status      enums.OrderStatus `gorm:"column:status;not null"`

	Subtotal       decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"column:tax_amount;type:numeric(12,2);not null"`
	ShippingCost   decimal.Decimal `gorm:"column:shipping_cost;type:numeric(12,2);not null"`
	Total          decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null"`
	Carrier        *enums.Carrier  `gorm:"column:carrier"`
	ShippingRegion string          `gorm:"column:shipping_region"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Account *Account `gorm:"foreignKey:AccountID"`

	PaidAt      *time.Time `gorm:"column:paid_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem snapshots one configured product line. Configuration and
// PriceBreakdown are stored as JSON so the order remains reproducible even if
// the catalog changes afterwards.
type OrderItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`

	ProductName    string          `gorm:"column:product_name;not null"`
	Quantity       int64           `gorm:"column:quantity;not null"`
	Configuration  json.RawMessage `gorm:"column:configuration;type:jsonb;not null"`
	PriceBreakdown json.RawMessage `gorm:"column:price_breakdown;type:jsonb;not null"`
	UnitPrice      decimal.Decimal `gorm:"column:unit_price;type:numeric(12,4);not null"`
	LineTotal      decimal.Decimal `gorm:"column:line_total;type:numeric(12,2);not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
