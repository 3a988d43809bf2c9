package reservation

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/distromax/inventory-api/constant"
	"github.com/distromax/inventory-api/model"
)

type ReservationRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Reservation, error)
	FindStaleActive(ctx context.Context, now time.Time, limit int) ([]model.Reservation, error)
	ListActiveByOrderTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID string) ([]model.Reservation, error)
	MarkExpiredTx(ctx context.Context, tx *sqlx.Tx, id string, releasedAt time.Time) error
	MarkReleasedTx(ctx context.Context, tx *sqlx.Tx, id string, releasedAt time.Time) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewReservationRepository(conn *sqlx.DB) ReservationRepository {
	return &SQL{conn: conn}
}

const selectColumns = "id, tenant_id, sku_id, order_id, location, quantity, status, created_at, expires_at, released_at"

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	q := "INSERT INTO reservation (id, tenant_id, sku_id, order_id, location, quantity, status, created_at, expires_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q,
		res.ID, res.TenantID, res.SkuID, res.OrderID, res.Location,
		res.Quantity, res.Status, res.CreatedAt, res.ExpiresAt)
	return err
}

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Reservation, error) {
	var res model.Reservation
	q := "SELECT " + selectColumns + " FROM reservation WHERE id = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, id).StructScan(&res); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

// FindStaleActive returns ACTIVE reservations whose window elapsed before
// now (strict comparison). This is a dirty read: each hit is re-validated
// under lock before it is touched, so a row released concurrently is simply
// skipped later.
func (r *SQL) FindStaleActive(ctx context.Context, now time.Time, limit int) ([]model.Reservation, error) {
	q := "SELECT " + selectColumns + " FROM reservation WHERE status = ? AND expires_at < ? ORDER BY expires_at LIMIT ?"
	rows, err := r.conn.QueryxContext(ctx, q, constant.ReservationStatusActive, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stale := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.StructScan(&res); err != nil {
			return nil, err
		}
		stale = append(stale, res)
	}
	return stale, rows.Err()
}

func (r *SQL) ListActiveByOrderTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID string) ([]model.Reservation, error) {
	q := "SELECT " + selectColumns + " FROM reservation WHERE tenant_id = ? AND order_id = ? AND status = ? FOR UPDATE"
	rows, err := tx.QueryxContext(ctx, q, tenantID, orderID, constant.ReservationStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	active := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.StructScan(&res); err != nil {
			return nil, err
		}
		active = append(active, res)
	}
	return active, rows.Err()
}

func (r *SQL) MarkExpiredTx(ctx context.Context, tx *sqlx.Tx, id string, releasedAt time.Time) error {
	return r.transition(ctx, tx, id, constant.ReservationStatusExpired, releasedAt)
}

func (r *SQL) MarkReleasedTx(ctx context.Context, tx *sqlx.Tx, id string, releasedAt time.Time) error {
	return r.transition(ctx, tx, id, constant.ReservationStatusReleased, releasedAt)
}

// transition is guarded on ACTIVE so a terminal reservation can never be
// moved again, regardless of caller interleaving.
func (r *SQL) transition(ctx context.Context, tx *sqlx.Tx, id string, to constant.ReservationStatus, releasedAt time.Time) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE reservation SET status = ?, released_at = ? WHERE id = ? AND status = ?",
		to, releasedAt, id, constant.ReservationStatusActive)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
