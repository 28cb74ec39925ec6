package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/printworks/printshop-backend/api/middleware"
	"github.com/printworks/printshop-backend/api/responses"
	"github.com/printworks/printshop-backend/internal/orders"
	"github.com/printworks/printshop-backend/pkg/db/models"
	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
	"github.com/printworks/printshop-backend/pkg/logger"
)

type orderItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int64           `json:"quantity"`
	Configuration  json.RawMessage `json:"configuration"`
	PriceBreakdown json.RawMessage `json:"price_breakdown"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LineTotal      decimal.Decimal `json:"line_total"`
}

type orderResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrderNumber    int64               `json:"order_number"`
	Status         string              `json:"status"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	TaxAmount      decimal.Decimal     `json:"tax_amount"`
	ShippingCost   decimal.Decimal     `json:"shipping_cost"`
	Total          decimal.Decimal     `json:"total"`
	Carrier        *string             `json:"carrier,omitempty"`
	ShippingRegion string              `json:"shipping_region,omitempty"`
	Items          []orderItemResponse `json:"items"`
	PaidAt         *time.Time          `json:"paid_at,omitempty"`
	CancelledAt    *time.Time          `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

func newOrderResponse(order *models.Order) orderResponse {
	out := orderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		Status:         string(order.Status),
		Subtotal:       order.Subtotal,
		TaxAmount:      order.TaxAmount,
		ShippingCost:   order.ShippingCost,
		Total:          order.Total,
		ShippingRegion: order.ShippingRegion,
		PaidAt:         order.PaidAt,
		CancelledAt:    order.CancelledAt,
		CreatedAt:      order.CreatedAt,
	}
	if order.Carrier != nil {
		carrier := string(*order.Carrier)
		out.Carrier = &carrier
	}
	for _, item := range order.Items {
		out.Items = append(out.Items, orderItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			Configuration:  item.Configuration,
			PriceBreakdown: item.PriceBreakdown,
			UnitPrice:      item.UnitPrice,
			LineTotal:      item.LineTotal,
		})
	}
	return out
}

func accountIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.AccountIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid account id")
	}
	return id, nil
}

// OrderList returns the caller's orders, newest first.
func OrderList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		accountID, err := accountIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListForAccount(r.Context(), accountID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]orderResponse, 0, len(list))
		for i := range list {
			out = append(out, newOrderResponse(&list[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

// OrderDetail returns one of the caller's orders.
func OrderDetail(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		accountID, err := accountIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "invalid order id"))
			return
		}

		order, err := svc.Get(r.Context(), accountID, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newOrderResponse(order))
	}
}
