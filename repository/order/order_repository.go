package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/distromax/inventory-api/constant"
	"github.com/distromax/inventory-api/model"
)

// OrderRepository is the engine's window into the externally-owned order
// lifecycle: read a status, cancel a still-provisional order. Both run
// inside the caller's transaction.
type OrderRepository interface {
	GetDetailTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.OrderDetail, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, orderID string, status constant.OrderStatus) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetDetailTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	row := tx.QueryRowxContext(ctx, "SELECT id, tenant_id, status FROM `order` WHERE id = ? FOR UPDATE", orderID)
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, orderID string, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE `order` SET status = ? WHERE id = ?", status, orderID)
	return err
}
