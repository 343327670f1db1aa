package constant

type MovementDirection string

const (
	DirectionIn  MovementDirection = "IN"
	DirectionOut MovementDirection = "OUT"
)

type MovementType string

const (
	MovementInventoryInit  MovementType = "INVENTORY_INIT"
	MovementInbound        MovementType = "INBOUND"
	MovementOutbound       MovementType = "OUTBOUND"
	MovementOutboundCancel MovementType = "OUTBOUND_CANCEL"
	MovementDisposal       MovementType = "DISPOSAL"
	MovementDamage         MovementType = "DAMAGE"
	MovementReturnB2C      MovementType = "RETURN_B2C"
	MovementAdjustmentPlus MovementType = "ADJUSTMENT_PLUS"
	MovementAdjustmentMin  MovementType = "ADJUSTMENT_MINUS"
	MovementBundleBreakIn  MovementType = "BUNDLE_BREAK_IN"
	MovementBundleBreakOut MovementType = "BUNDLE_BREAK_OUT"
	MovementExportPickup   MovementType = "EXPORT_PICKUP"
	MovementTransfer       MovementType = "TRANSFER"
)

// MovementFixedDirection pins each movement type to the only direction it may
// flow. TRANSFER is deliberately absent: the caller supplies either direction.
var MovementFixedDirection = map[MovementType]MovementDirection{
	MovementInventoryInit:  DirectionIn,
	MovementInbound:        DirectionIn,
	MovementOutbound:       DirectionOut,
	MovementOutboundCancel: DirectionIn,
	MovementDisposal:       DirectionOut,
	MovementDamage:         DirectionOut,
	MovementReturnB2C:      DirectionIn,
	MovementAdjustmentPlus: DirectionIn,
	MovementAdjustmentMin:  DirectionOut,
	MovementBundleBreakIn:  DirectionIn,
	MovementBundleBreakOut: DirectionOut,
	MovementExportPickup:   DirectionOut,
}

// IsMovementType reports whether t is one of the known movement types.
func IsMovementType(t MovementType) bool {
	if t == MovementTransfer {
		return true
	}
	_, ok := MovementFixedDirection[t]
	return ok
}

type PutawayStatus string

const (
	PutawayStatusPending   PutawayStatus = "PENDING"
	PutawayStatusAssigned  PutawayStatus = "ASSIGNED"
	PutawayStatusCompleted PutawayStatus = "COMPLETED"
)
