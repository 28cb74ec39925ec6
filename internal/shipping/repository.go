package shipping

import (
	"context"

	"gorm.io/gorm"

	"github.com/printworks/printshop-backend/internal/repo"
	"github.com/printworks/printshop-backend/pkg/db/models"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
)

// Repository loads carrier configuration.
type Repository interface {
	ListEnabled(ctx context.Context) ([]models.CarrierSettings, error)
}

type repository struct {
	repo.Base
}

// NewRepository constructs the carrier settings repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) ListEnabled(ctx context.Context) ([]models.CarrierSettings, error) {
	var carriers []models.CarrierSettings
	err := r.DB(ctx).
		Where("enabled = ?", true).
		Order("carrier ASC").
		Find(&carriers).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing carriers")
	}
	return carriers, nil
}
