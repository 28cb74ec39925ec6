package shipping

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/pkg/enums"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
)

var oneHundred = decimal.NewFromInt(100)

// Base rate table per carrier: a pickup fee plus a per-pound rate. These
// stand in for live carrier APIs; markup and service-area filtering are the
// configurable parts.
var baseRates = map[enums.Carrier]struct {
	pickup   decimal.Decimal
	perPound decimal.Decimal
}{
	enums.CarrierFedEx:          {pickup: decimal.NewFromInt(12), perPound: decimal.RequireFromString("0.85")},
	enums.CarrierUPS:            {pickup: decimal.NewFromInt(11), perPound: decimal.RequireFromString("0.90")},
	enums.CarrierSouthwestCargo: {pickup: decimal.NewFromInt(25), perPound: decimal.RequireFromString("0.45")},
}

// RateRequest asks for quotes to a destination region.
type RateRequest struct {
	Region    string
	WeightLbs decimal.Decimal
}

// Rate is one carrier quote after markup.
type Rate struct {
	Carrier enums.Carrier   `json:"carrier"`
	Cost    decimal.Decimal `json:"cost"`
}

// Service quotes shipping rates from configured carriers.
type Service interface {
	// Rates returns marked-up quotes from every enabled carrier serving the
	// destination region. Disabled carriers and carriers outside their
	// service area are silently excluded.
	Rates(ctx context.Context, req RateRequest) ([]Rate, error)
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService constructs the shipping service.
func NewService(repository Repository, logg *logger.Logger) (Service, error) {
	if repository == nil {
		return nil, fmt.Errorf("shipping repository is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: repository, logg: logg}, nil
}

func (s *service) Rates(ctx context.Context, req RateRequest) ([]Rate, error) {
	if req.Region == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "destination region is required").
			WithDetails(map[string]any{"field": "region"})
	}
	if req.WeightLbs.LessThanOrEqual(decimal.Zero) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "weight must be positive").
			WithDetails(map[string]any{"field": "weight_lbs"})
	}

	carriers, err := s.repo.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}

	rates := make([]Rate, 0, len(carriers))
	for _, settings := range carriers {
		if !settings.ServesRegion(req.Region) {
			continue
		}
		base, ok := baseRates[settings.Carrier]
		if !ok {
			continue
		}
		cost := base.pickup.Add(base.perPound.Mul(req.WeightLbs))
		markup := cost.Mul(settings.MarkupPercent).Div(oneHundred)
		rates = append(rates, Rate{
			Carrier: settings.Carrier,
			Cost:    cost.Add(markup).Round(2),
		})
	}
	return rates, nil
}
