package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/printworks/printshop-backend/internal/repo"
	"github.com/printworks/printshop-backend/pkg/db/models"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
)

// Repository loads credentials for customers and back-office operators.
type Repository interface {
	AccountByEmail(ctx context.Context, email string) (*models.Account, error)
	OperatorByEmail(ctx context.Context, email string) (*models.Operator, error)
}

type repository struct {
	repo.Base
}

// NewRepository constructs the auth repository.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.DB(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading account")
	}
	return &account, nil
}

func (r *repository) OperatorByEmail(ctx context.Context, email string) (*models.Operator, error) {
	var operator models.Operator
	err := r.DB(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&operator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "operator not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading operator")
	}
	return &operator, nil
}
