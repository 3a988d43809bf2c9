package model

import "time"

// InventoryRecord is one ledger row: physical stock and committed stock for
// a SKU at a single warehouse location. Rows are zeroed, never deleted.
type InventoryRecord struct {
	ID        int64     `db:"id"`
	TenantID  string    `db:"tenant_id"`
	SkuID     string    `db:"sku_id"`
	Location  string    `db:"location"`
	OnHand    int64     `db:"on_hand"`
	Allocated int64     `db:"allocated"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Available is on-hand minus allocated, floored at zero.
func (r *InventoryRecord) Available() int64 {
	avail := r.OnHand - r.Allocated
	if avail < 0 {
		return 0
	}
	return avail
}

// AggregateStock sums ledger rows for one SKU across matched locations.
type AggregateStock struct {
	OnHand    int64
	Allocated int64
	Locations []string
}

type AdjustInventoryRequest struct {
	SkuID    string `json:"sku_id" validate:"required"`
	Location string `json:"location" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
}

type AdjustInventoryResponse struct {
	SkuID    string `json:"sku_id"`
	Location string `json:"location"`
	OnHand   int64  `json:"on_hand"`
}
