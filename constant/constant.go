package constant

type ContextKey string

const (
	ActorIDKey    ContextKey = "actor_id"
	CustomerIDKey ContextKey = "customer_id"
	RoleKey       ContextKey = "role"
)

// Roles carried by externally issued JWT claims.
const (
	RoleAdmin   = "admin"
	RolePartner = "partner"
)

type WarehouseStatus int

const (
	WarehouseStatusActive   WarehouseStatus = 1
	WarehouseStatusInactive WarehouseStatus = 2
)

type ReceiptStatus string

const (
	ReceiptStatusOpen     ReceiptStatus = "OPEN"
	ReceiptStatusReceived ReceiptStatus = "RECEIVED"
)

// ReferenceType tags the weak reference carried by a ledger entry.
type ReferenceType string

const (
	ReferencePutawayTask    ReferenceType = "PUTAWAY_TASK"
	ReferenceInboundReceipt ReferenceType = "INBOUND_RECEIPT"
	ReferenceOrder          ReferenceType = "ORDER"
)

type AlertType string

const (
	AlertLowStock         AlertType = "LOW_STOCK"
	AlertInboundDelay     AlertType = "INBOUND_DELAY"
	AlertLedgerDivergence AlertType = "LEDGER_DIVERGENCE"
)
