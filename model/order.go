package model

import "github.com/distromax/inventory-api/constant"

// OrderDetail is the slice of the external order lifecycle the engine
// needs: read status by id, transition provisional orders to CANCELLED.
type OrderDetail struct {
	ID       string               `db:"id"`
	TenantID string               `db:"tenant_id"`
	Status   constant.OrderStatus `db:"status"`
}
