package constant

// LowStockBuffer is the fixed headroom used by the availability check: a
// line that is sufficient but leaves less than this buffer above the
// requested quantity is flagged as low stock.
const LowStockBuffer = 10

// Warning levels emitted per availability line.
const (
	WarningLevelNone     = "none"
	WarningLevelLow      = "low"
	WarningLevelCritical = "critical"
)

// Audit log entity types and actions written by the engine.
const (
	AuditEntityInventory   = "Inventory"
	AuditEntityOrder       = "Order"
	AuditEntityReservation = "Reservation"

	AuditActionAllocation       = "ALLOCATION"
	AuditActionRelease          = "RELEASE"
	AuditActionShipment         = "SHIPMENT"
	AuditActionAdjustment       = "ADJUSTMENT"
	AuditActionExpired          = "RESERVATION_EXPIRED"
	AuditActionAutoCancelOrder  = "ORDER_AUTO_CANCELLED"
	AuditActionInventoryShipped = "INVENTORY_SHIPPED"
)
