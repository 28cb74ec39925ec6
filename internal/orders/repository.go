package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/printworks/printshop-backend/internal/repo"
	pkgdb "github.com/printworks/printshop-backend/pkg/db"
	"github.com/printworks/printshop-backend/pkg/db/models"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
)

// Repository persists and loads orders.
type Repository interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]models.Order, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, order *models.Order) error
}

type repository struct {
	repo.Base
}

// NewRepository constructs the orders repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	db := tx
	if db == nil {
		db = r.DB(ctx)
	}
	if err := db.Create(order).Error; err != nil {
		if pkgdb.IsUniqueViolation(err, "orders_order_number_key") {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "order number already allocated")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order")
	}
	return nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	return &order, nil
}

func (r *repository) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB(ctx).
		Preload("Items").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}
	return orders, nil
}

func (r *repository) UpdateStatus(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	db := tx
	if db == nil {
		db = r.DB(ctx)
	}
	err := db.Model(order).
		Select("status", "paid_at", "cancelled_at", "updated_at").
		Updates(order).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating order status")
	}
	return nil
}
