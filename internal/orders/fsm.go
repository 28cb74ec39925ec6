package orders

import (
	"github.com/printworks/printshop-backend/pkg/enums"
)

// transitions is the order lifecycle table. Keys are current statuses, values
// the statuses an operator may move the order to.
var transitions = map[enums.OrderStatus][]enums.OrderStatus{
	enums.OrderStatusPendingPayment: {
		enums.OrderStatusPaid,
		enums.OrderStatusCancelled,
		enums.OrderStatusRefunded,
	},
	enums.OrderStatusPaid: {
		enums.OrderStatusInProduction,
		enums.OrderStatusCancelled,
		enums.OrderStatusRefunded,
	},
	enums.OrderStatusInProduction: {
		enums.OrderStatusShipped,
	},
	enums.OrderStatusShipped: {
		enums.OrderStatusDelivered,
	},
	// DELIVERED, CANCELLED, REFUNDED are terminal.
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to enums.OrderStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
