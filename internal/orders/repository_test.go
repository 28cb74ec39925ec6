package orders

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/printworks/printshop-backend/pkg/db/models"
	"github.com/printworks/printshop-backend/pkg/enums"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  order_number INTEGER NOT NULL,
  account_id TEXT NOT NULL,
  status TEXT NOT NULL,
  subtotal NUMERIC NOT NULL,
  tax_amount NUMERIC NOT NULL,
  shipping_cost NUMERIC NOT NULL,
  total NUMERIC NOT NULL,
  carrier TEXT,
  shipping_region TEXT,
  paid_at DATETIME,
  cancelled_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  configuration TEXT NOT NULL,
  price_breakdown TEXT NOT NULL,
  unit_price NUMERIC NOT NULL,
  line_total NUMERIC NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(orderItems).Error)
	return db
}

func buildTestOrder(accountID uuid.UUID, orderNumber int64) *models.Order {
	carrier := enums.CarrierFedEx
	return &models.Order{
		ID:             uuid.New(),
		OrderNumber:    orderNumber,
		AccountID:      accountID,
		Status:         enums.OrderStatusPendingPayment,
		Subtotal:       decimal.RequireFromString("200.00"),
		TaxAmount:      decimal.RequireFromString("16.50"),
		ShippingCost:   decimal.RequireFromString("22.55"),
		Total:          decimal.RequireFromString("239.05"),
		Carrier:        &carrier,
		ShippingRegion: "NY",
		Items: []models.OrderItem{
			{
				ID:             uuid.New(),
				ProductID:      uuid.New(),
				ProductName:    "Business Cards",
				Quantity:       500,
				Configuration:  json.RawMessage(`{"quantity":500}`),
				PriceBreakdown: json.RawMessage(`{"total":"200.00"}`),
				UnitPrice:      decimal.RequireFromString("0.4000"),
				LineTotal:      decimal.RequireFromString("200.00"),
			},
		},
	}
}

func TestRepositoryCreateAndGetRoundTrip(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := buildTestOrder(uuid.New(), 10001)
	require.NoError(t, repo.Create(ctx, nil, order))

	loaded, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, order.OrderNumber, loaded.OrderNumber)
	assert.Equal(t, order.AccountID, loaded.AccountID)
	assert.Equal(t, enums.OrderStatusPendingPayment, loaded.Status)
	assert.True(t, loaded.Total.Equal(decimal.RequireFromString("239.05")), "total %s", loaded.Total)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Business Cards", loaded.Items[0].ProductName)
	assert.Equal(t, int64(500), loaded.Items[0].Quantity)
	assert.JSONEq(t, `{"quantity":500}`, string(loaded.Items[0].Configuration))
}

func TestRepositoryGetUnknownOrderIsNotFound(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.Get(context.Background(), uuid.New())
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRepositoryListForAccountNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	accountID := uuid.New()
	older := buildTestOrder(accountID, 10010)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := buildTestOrder(accountID, 10011)
	newer.CreatedAt = time.Now().UTC()
	other := buildTestOrder(uuid.New(), 10012)

	require.NoError(t, repo.Create(ctx, nil, older))
	require.NoError(t, repo.Create(ctx, nil, newer))
	require.NoError(t, repo.Create(ctx, nil, other))

	listed, err := repo.ListForAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, int64(10011), listed[0].OrderNumber)
	assert.Equal(t, int64(10010), listed[1].OrderNumber)
}

func TestRepositoryUpdateStatusPersistsTimestamps(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := buildTestOrder(uuid.New(), 10020)
	require.NoError(t, repo.Create(ctx, nil, order))

	paidAt := time.Now().UTC()
	order.Status = enums.OrderStatusPaid
	order.PaidAt = &paidAt
	require.NoError(t, repo.UpdateStatus(ctx, nil, order))

	loaded, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPaid, loaded.Status)
	require.NotNil(t, loaded.PaidAt)
	assert.WithinDuration(t, paidAt, *loaded.PaidAt, time.Second)
}
