package model

import (
	"time"

	"github.com/distromax/inventory-api/constant"
)

// Reservation is a time-boxed claim on allocated inventory tied to one
// order. While ACTIVE its quantity is counted in the ledger's allocated
// total; RELEASED and EXPIRED are terminal.
type Reservation struct {
	ID         string                     `db:"id"`
	TenantID   string                     `db:"tenant_id"`
	SkuID      string                     `db:"sku_id"`
	OrderID    string                     `db:"order_id"`
	Location   string                     `db:"location"`
	Quantity   int64                      `db:"quantity"`
	Status     constant.ReservationStatus `db:"status"`
	CreatedAt  time.Time                  `db:"created_at"`
	ExpiresAt  time.Time                  `db:"expires_at"`
	ReleasedAt *time.Time                 `db:"released_at"`
}

// IsExpired reports whether the reservation's window has elapsed. The
// comparison is strict: a reservation expiring exactly at now is still live.
func (r *Reservation) IsExpired(now time.Time) bool {
	return r.ExpiresAt.Before(now)
}

type CommitItemRequest struct {
	SkuID    string `json:"sku_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type CommitReservationRequest struct {
	OrderID  string              `json:"order_id" validate:"required"`
	Location string              `json:"location" validate:"required"`
	Items    []CommitItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CommitReservationResponse struct {
	OrderID        string    `json:"order_id"`
	ReservationIDs []string  `json:"reservation_ids"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type ShipOrderRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required"`
}

type ShipOrderResponse struct {
	OrderID         string `json:"order_id"`
	TrackingNumber  string `json:"tracking_number"`
	Shipped         int    `json:"shipped"`
	QuantityShipped int64  `json:"quantity_shipped"`
}

type ReleaseReservationsResponse struct {
	OrderID           string `json:"order_id"`
	Released          int    `json:"released"`
	InventoryReleased int64  `json:"inventory_released"`
}

// SweepResult accumulates the counters of one sweep pass. It is local to
// the run; concurrent or repeated sweeps never share state.
type SweepResult struct {
	Processed         int       `json:"processed"`
	OrdersAffected    int       `json:"orders_affected"`
	InventoryReleased int64     `json:"inventory_released"`
	Anomalies         int       `json:"anomalies"`
	Failures          int       `json:"failures"`
	Timestamp         time.Time `json:"timestamp"`
}
