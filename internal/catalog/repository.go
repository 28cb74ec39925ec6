package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/printworks/printshop-backend/internal/repo"
	"github.com/printworks/printshop-backend/pkg/db/models"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
)

// Repository loads products with every option relation needed by the resolver.
type Repository interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type repository struct {
	repo.Base
}

// NewRepository constructs the catalog repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.DB(ctx).
		Preload("PaperStockSet.Items", orderBySort).
		Preload("PaperStockSet.Items.PaperStock").
		Preload("PaperStockSet.Items.PaperStock.Coatings.Coating").
		Preload("PaperStockSet.Items.PaperStock.Sides.Sides").
		Preload("QuantityGroup").
		Preload("SizeGroup").
		Preload("SizeGroup.Sizes", orderBySort).
		Preload("TurnaroundTimeSet.Items", orderBySort).
		Preload("TurnaroundTimeSet.Items.TurnaroundTime").
		Preload("AddOnSets.Items", orderBySort).
		Preload("AddOnSets.Items.AddOn").
		Preload("AddOnSets.Items.AddOn.SubOptions", orderBySort).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
	}
	return &product, nil
}

func orderBySort(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}
