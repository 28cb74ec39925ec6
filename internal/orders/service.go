package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/printworks/printshop-backend/pkg/db/models"
	"github.com/printworks/printshop-backend/pkg/enums"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
	"github.com/printworks/printshop-backend/pkg/metrics"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// TransitionInput carries an admin-initiated status change.
type TransitionInput struct {
	OrderID      uuid.UUID
	TargetStatus enums.OrderStatus
	ActorID      uuid.UUID
}

// Service exposes order reads and lifecycle transitions.
type Service interface {
	Get(ctx context.Context, accountID, orderID uuid.UUID) (*models.Order, error)
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]models.Order, error)
	Transition(ctx context.Context, input TransitionInput) (*models.Order, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	logg    *logger.Logger
	metrics *metrics.EngineMetrics
}

// NewService constructs the orders service.
func NewService(repository Repository, tx txRunner, logg *logger.Logger, engineMetrics *metrics.EngineMetrics) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("tx runner is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		repo:    repository,
		tx:      tx,
		logg:    logg,
		metrics: engineMetrics,
	}, nil
}

func (s *service) Get(ctx context.Context, accountID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.AccountID != accountID {
		// Ownership failures look like missing orders to the caller.
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

func (s *service) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]models.Order, error) {
	return s.repo.ListForAccount(ctx, accountID)
}

func (s *service) Transition(ctx context.Context, input TransitionInput) (*models.Order, error) {
	if !input.TargetStatus.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("unknown order status %q", input.TargetStatus)).
			WithDetails(map[string]any{"field": "status"})
	}

	var updated *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		order, err := s.repo.Get(ctx, input.OrderID)
		if err != nil {
			return err
		}

		from := order.Status
		if !CanTransition(from, input.TargetStatus) {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("order cannot move from %s to %s", from, input.TargetStatus)).
				WithDetails(map[string]any{"from": string(from), "to": string(input.TargetStatus)})
		}

		now := time.Now().UTC()
		order.Status = input.TargetStatus
		switch input.TargetStatus {
		case enums.OrderStatusPaid:
			order.PaidAt = &now
		case enums.OrderStatusCancelled:
			order.CancelledAt = &now
		}

		if err := s.repo.UpdateStatus(ctx, tx, order); err != nil {
			return err
		}

		ctx := s.logg.WithOrderNumber(ctx, order.OrderNumber)
		ctx = s.logg.WithFields(ctx, map[string]any{
			"from":     string(from),
			"to":       string(input.TargetStatus),
			"actor_id": input.ActorID.String(),
		})
		s.logg.Info(ctx, "order.status_changed")
		s.metrics.IncOrderTransition(string(from), string(input.TargetStatus))

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
