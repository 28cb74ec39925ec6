package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/printworks/printshop-backend/internal/orders"
	"github.com/printworks/printshop-backend/internal/pricing"
	"github.com/printworks/printshop-backend/internal/shipping"
	"github.com/printworks/printshop-backend/pkg/config"
	"github.com/printworks/printshop-backend/pkg/db/models"
	"github.com/printworks/printshop-backend/pkg/enums"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
	"github.com/printworks/printshop-backend/pkg/metrics"
)

var oneHundred = decimal.NewFromInt(100)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ShippingSelection is the carrier the customer picked at checkout.
type ShippingSelection struct {
	Carrier   enums.Carrier   `json:"carrier"`
	Region    string          `json:"region"`
	WeightLbs decimal.Decimal `json:"weight_lbs"`
}

// Input is one checkout request. ClaimedTotal is what the client thinks the
// order costs; it is logged when it disagrees with the server price but is
// never used for anything else.
type Input struct {
	AccountID    uuid.UUID
	Items        []pricing.CandidateConfiguration
	Shipping     ShippingSelection
	ClaimedTotal *decimal.Decimal
}

// Service turns priced configurations into persisted orders.
type Service interface {
	// Checkout re-validates and re-prices every item, quotes shipping, applies
	// tax and persists the order in PENDING_PAYMENT. The returned order carries
	// the authoritative totals.
	Checkout(ctx context.Context, input Input) (*models.Order, error)
}

type service struct {
	pricing  pricing.Service
	shipping shipping.Service
	orders   orders.Repository
	tx       txRunner
	taxRate  decimal.Decimal
	logg     *logger.Logger
	metrics  *metrics.EngineMetrics
}

// NewService constructs the checkout service.
func NewService(
	pricingSvc pricing.Service,
	shippingSvc shipping.Service,
	ordersRepo orders.Repository,
	tx txRunner,
	cfg config.CheckoutConfig,
	logg *logger.Logger,
	engineMetrics *metrics.EngineMetrics,
) (Service, error) {
	if pricingSvc == nil {
		return nil, fmt.Errorf("pricing service is required")
	}
	if shippingSvc == nil {
		return nil, fmt.Errorf("shipping service is required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("tx runner is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	taxRate, err := decimal.NewFromString(cfg.TaxRatePercent)
	if err != nil {
		return nil, fmt.Errorf("parsing tax rate %q: %w", cfg.TaxRatePercent, err)
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("tax rate must not be negative")
	}
	return &service{
		pricing:  pricingSvc,
		shipping: shippingSvc,
		orders:   ordersRepo,
		tx:       tx,
		taxRate:  taxRate,
		logg:     logg,
		metrics:  engineMetrics,
	}, nil
}

func (s *service) Checkout(ctx context.Context, input Input) (*models.Order, error) {
	order, err := s.checkout(ctx, input)
	outcome := "success"
	if err != nil {
		outcome = "rejected"
	}
	s.metrics.IncCheckout(outcome)
	return order, err
}

func (s *service) checkout(ctx context.Context, input Input) (*models.Order, error) {
	ctx = s.logg.WithAccountID(ctx, input.AccountID.String())

	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout requires at least one item").
			WithDetails(map[string]any{"field": "items"})
	}

	items, subtotal, err := s.priceItems(ctx, input.AccountID, input.Items)
	if err != nil {
		return nil, err
	}

	shippingCost, err := s.shippingCost(ctx, input.Shipping)
	if err != nil {
		return nil, err
	}

	tax := subtotal.Mul(s.taxRate).Div(oneHundred).Round(2)
	total := subtotal.Add(tax).Add(shippingCost)

	if input.ClaimedTotal != nil && !input.ClaimedTotal.Equal(total) {
		ctx := s.logg.WithFields(ctx, map[string]any{
			"claimed_total":  input.ClaimedTotal.String(),
			"computed_total": total.String(),
		})
		s.logg.Warn(ctx, "checkout.total_mismatch")
	}

	carrier := input.Shipping.Carrier
	order := &models.Order{
		AccountID:      input.AccountID,
		Status:         enums.OrderStatusPendingPayment,
		Subtotal:       subtotal,
		TaxAmount:      tax,
		ShippingCost:   shippingCost,
		Total:          total,
		Carrier:        &carrier,
		ShippingRegion: input.Shipping.Region,
		Items:          items,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.orders.Create(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithOrderNumber(ctx, order.OrderNumber)
	ctx = s.logg.WithFields(ctx, map[string]any{
		"items": len(order.Items),
		"total": total.String(),
	})
	s.logg.Info(ctx, "checkout.order_created")

	return order, nil
}

// priceItems re-runs the full quote pipeline per item. Each snapshot freezes
// the candidate configuration and the computed breakdown so the order stays
// reproducible after catalog edits.
func (s *service) priceItems(ctx context.Context, accountID uuid.UUID, candidates []pricing.CandidateConfiguration) ([]models.OrderItem, decimal.Decimal, error) {
	items := make([]models.OrderItem, 0, len(candidates))
	subtotal := decimal.Zero

	for i, candidate := range candidates {
		quote, err := s.pricing.QuoteConfiguration(ctx, &accountID, candidate)
		if err != nil {
			itemCtx := s.logg.WithFields(ctx, map[string]any{"item_index": i})
			s.logg.Warn(itemCtx, "checkout.item_rejected")
			return nil, decimal.Zero, err
		}

		configJSON, err := json.Marshal(candidate)
		if err != nil {
			return nil, decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "snapshotting configuration")
		}
		breakdownJSON, err := json.Marshal(quote.Breakdown)
		if err != nil {
			return nil, decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "snapshotting breakdown")
		}

		items = append(items, models.OrderItem{
			ProductID:      quote.Configuration.Product.ID,
			ProductName:    quote.Configuration.Product.Name,
			Quantity:       quote.Breakdown.Quantity,
			Configuration:  configJSON,
			PriceBreakdown: breakdownJSON,
			UnitPrice:      quote.Breakdown.UnitPrice,
			LineTotal:      quote.Breakdown.Total,
		})
		subtotal = subtotal.Add(quote.Breakdown.Total)
	}

	return items, subtotal, nil
}

func (s *service) shippingCost(ctx context.Context, selection ShippingSelection) (decimal.Decimal, error) {
	if !selection.Carrier.IsValid() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("unknown carrier %q", selection.Carrier)).
			WithDetails(map[string]any{"field": "carrier"})
	}

	rates, err := s.shipping.Rates(ctx, shipping.RateRequest{
		Region:    selection.Region,
		WeightLbs: selection.WeightLbs,
	})
	if err != nil {
		return decimal.Zero, err
	}

	for _, rate := range rates {
		if rate.Carrier == selection.Carrier {
			return rate.Cost, nil
		}
	}
	return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation,
		fmt.Sprintf("carrier %s does not serve region %s", selection.Carrier, selection.Region)).
		WithDetails(map[string]any{"field": "carrier"})
}
