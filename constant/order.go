package constant

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusAllocated OrderStatus = "ALLOCATED"
	OrderStatusPicked    OrderStatus = "PICKED"
	OrderStatusPacked    OrderStatus = "PACKED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusFailed    OrderStatus = "FAILED"
	OrderStatusSynced    OrderStatus = "SYNCED"
	OrderStatusPushed    OrderStatus = "PUSHED"
	OrderStatusOnHold    OrderStatus = "ON_HOLD"
	OrderStatusReturnReq OrderStatus = "RETURN_REQ"
)

// OrderStatusTransitions maps each status to the set of statuses it may move to.
// CANCELLED is terminal. A status missing from the map rejects every transition.
var OrderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:   {OrderStatusApproved, OrderStatusCancelled, OrderStatusFailed},
	OrderStatusApproved:  {OrderStatusAllocated, OrderStatusCancelled, OrderStatusOnHold},
	OrderStatusAllocated: {OrderStatusPicked, OrderStatusCancelled, OrderStatusOnHold},
	OrderStatusPicked:    {OrderStatusPacked, OrderStatusCancelled},
	OrderStatusPacked:    {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusReturnReq},
	OrderStatusDelivered: {OrderStatusReturnReq},
	OrderStatusCancelled: {},
	OrderStatusFailed:    {OrderStatusCreated},
	OrderStatusSynced:    {OrderStatusApproved, OrderStatusCancelled},
	OrderStatusPushed:    {OrderStatusSynced, OrderStatusFailed},
}

// CanTransitionOrderStatus reports whether an order may move from current to next.
// Re-asserting the current status is always allowed so retried requests stay a no-op.
func CanTransitionOrderStatus(current, next OrderStatus) bool {
	if current == next {
		return true
	}
	for _, allowed := range OrderStatusTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}
