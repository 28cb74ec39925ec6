package brokers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/printworks/printshop-backend/internal/repo"
	"github.com/printworks/printshop-backend/pkg/db/models"
	"github.com/printworks/printshop-backend/pkg/enums"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
)

// Repository looks up broker discount configuration.
type Repository interface {
	// DiscountFor returns the discount percent for the account and product
	// category, or nil when no discount is configured or the account is not
	// a broker.
	DiscountFor(ctx context.Context, accountID uuid.UUID, category enums.ProductCategory) (*decimal.Decimal, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

type repository struct {
	repo.Base
}

// NewRepository constructs the broker discount repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) DiscountFor(ctx context.Context, accountID uuid.UUID, category enums.ProductCategory) (*decimal.Decimal, error) {
	account, err := r.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsBroker {
		return nil, nil
	}

	var discount models.BrokerDiscount
	err = r.DB(ctx).
		Where("account_id = ? AND category = ?", accountID, category).
		First(&discount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading broker discount")
	}
	return &discount.Percent, nil
}

func (r *repository) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.DB(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading account")
	}
	return &account, nil
}
