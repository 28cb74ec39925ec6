package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/internal/catalog"
	"github.com/printworks/printshop-backend/pkg/enums"
	"github.com/printworks/printshop-backend/pkg/logger"
	"github.com/printworks/printshop-backend/pkg/metrics"
)

// DiscountLookup resolves the broker discount percent for an account and
// product category; nil means no discount applies.
type DiscountLookup interface {
	DiscountFor(ctx context.Context, accountID uuid.UUID, category enums.ProductCategory) (*decimal.Decimal, error)
}

// Quote bundles the validated configuration with its computed breakdown.
type Quote struct {
	Configuration *ValidatedConfiguration
	Breakdown     *PriceBreakdown
}

// Service is the quote entry point: resolve, validate, price.
type Service interface {
	// QuoteConfiguration validates and prices a candidate. accountID may be
	// nil for anonymous quotes; broker discounts then never apply.
	QuoteConfiguration(ctx context.Context, accountID *uuid.UUID, candidate CandidateConfiguration) (*Quote, error)
}

type service struct {
	catalog   catalog.Service
	discounts DiscountLookup
	logg      *logger.Logger
	metrics   *metrics.EngineMetrics
}

// NewService constructs the pricing service.
func NewService(catalogSvc catalog.Service, discounts DiscountLookup, logg *logger.Logger, engineMetrics *metrics.EngineMetrics) (Service, error) {
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service is required")
	}
	if discounts == nil {
		return nil, fmt.Errorf("discount lookup is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		catalog:   catalogSvc,
		discounts: discounts,
		logg:      logg,
		metrics:   engineMetrics,
	}, nil
}

func (s *service) QuoteConfiguration(ctx context.Context, accountID *uuid.UUID, candidate CandidateConfiguration) (*Quote, error) {
	start := time.Now()

	quote, err := s.quote(ctx, accountID, candidate)
	outcome := "success"
	if err != nil {
		outcome = "rejected"
	}
	s.metrics.ObserveQuote(outcome, time.Since(start))
	return quote, err
}

func (s *service) quote(ctx context.Context, accountID *uuid.UUID, candidate CandidateConfiguration) (*Quote, error) {
	ctx = s.logg.WithProductID(ctx, candidate.ProductID.String())

	resolved, err := s.catalog.Resolve(ctx, candidate.ProductID)
	if err != nil {
		return nil, err
	}

	validated, err := Validate(resolved, candidate)
	if err != nil {
		return nil, err
	}

	var discount *decimal.Decimal
	if accountID != nil {
		discount, err = s.discounts.DiscountFor(ctx, *accountID, validated.Product.Category)
		if err != nil {
			return nil, err
		}
	}

	breakdown, err := Calculate(validated, discount)
	if err != nil {
		s.logg.Error(ctx, "pricing.calculation_failed", err)
		return nil, err
	}

	return &Quote{Configuration: validated, Breakdown: breakdown}, nil
}
