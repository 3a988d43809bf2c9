package inventory

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/distromax/inventory-api/constant"
	"github.com/distromax/inventory-api/model"
	"github.com/distromax/inventory-api/utils/errors"
)

type InventoryRepository interface {
	GetAggregate(ctx context.Context, tenantID string, skuIDs []string, location string) (map[string]*model.AggregateStock, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string) (*model.InventoryRecord, error)
	IncrementAllocatedTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string, quantity int64) error
	DecrementAllocatedTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string, quantity int64) error
	ShipStockTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string, quantity int64) error
	UpsertOnHandTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string, delta int64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetAggregate(ctx context.Context, tenantID string, skuIDs []string, location string) (map[string]*model.AggregateStock, error) {
	if len(skuIDs) == 0 {
		return map[string]*model.AggregateStock{}, nil
	}

	q := "SELECT sku_id, location, on_hand, allocated FROM inventory WHERE tenant_id = ? AND sku_id IN (?)"
	args := []interface{}{tenantID, skuIDs}
	if location != "" {
		q += " AND location = ?"
		args = append(args, location)
	}

	q, inArgs, err := sqlx.In(q, args...)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryxContext(ctx, r.conn.Rebind(q), inArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agg := make(map[string]*model.AggregateStock)
	for rows.Next() {
		var rec model.InventoryRecord
		if err := rows.StructScan(&rec); err != nil {
			return nil, err
		}
		stock, ok := agg[rec.SkuID]
		if !ok {
			stock = &model.AggregateStock{}
			agg[rec.SkuID] = stock
		}
		stock.OnHand += rec.OnHand
		stock.Allocated += rec.Allocated
		stock.Locations = append(stock.Locations, rec.Location)
	}
	return agg, rows.Err()
}

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	q := "SELECT id, tenant_id, sku_id, location, on_hand, allocated, updated_at FROM inventory WHERE tenant_id = ? AND sku_id = ? AND location = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, tenantID, skuID, location).StructScan(&rec); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *SQL) IncrementAllocatedTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string, quantity int64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE inventory SET allocated = allocated + ? WHERE tenant_id = ? AND sku_id = ? AND location = ?",
		quantity, tenantID, skuID, location)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// DecrementAllocatedTx releases committed quantity back to the available
// pool. With a known location the exact row is debited; with an empty
// location the first matching row holding enough allocated absorbs the
// debit. The guarded UPDATE keeps allocated from ever going negative, so a
// release larger than the row's allocation fails with
// ErrInsufficientAllocation instead of corrupting the ledger.
func (r *SQL) DecrementAllocatedTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string, quantity int64) error {
	if location != "" {
		res, err := tx.ExecContext(ctx,
			"UPDATE inventory SET allocated = allocated - ? WHERE tenant_id = ? AND sku_id = ? AND location = ? AND allocated >= ?",
			quantity, tenantID, skuID, location, quantity)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected > 0 {
			return nil
		}
		// Fall through: the stamped location can no longer absorb the
		// debit (externally corrected row). Try any other row before
		// reporting the anomaly.
	}

	var candidates []model.InventoryRecord
	if err := tx.SelectContext(ctx, &candidates,
		"SELECT id, tenant_id, sku_id, location, on_hand, allocated, updated_at FROM inventory WHERE tenant_id = ? AND sku_id = ? ORDER BY location FOR UPDATE",
		tenantID, skuID); err != nil {
		return err
	}

	for i := range candidates {
		if candidates[i].Allocated < quantity {
			continue
		}
		if _, err := tx.ExecContext(ctx, "UPDATE inventory SET allocated = allocated - ? WHERE id = ?", quantity, candidates[i].ID); err != nil {
			return err
		}
		return nil
	}

	return errors.SetCustomError(constant.ErrInsufficientAllocation)
}

// ShipStockTx deducts shipped quantity from both on-hand and allocated in
// one guarded statement. Unlike the release paths there is no fallback row:
// shipping against a claim the ledger does not carry is a hard
// ErrInsufficientAllocation and the caller's transaction rolls back.
func (r *SQL) ShipStockTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string, quantity int64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE inventory SET on_hand = on_hand - ?, allocated = allocated - ? WHERE tenant_id = ? AND sku_id = ? AND location = ? AND allocated >= ? AND on_hand >= ?",
		quantity, quantity, tenantID, skuID, location, quantity, quantity)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrInsufficientAllocation)
	}
	return nil
}

// UpsertOnHandTx applies a signed correction to on-hand stock, creating the
// row on first receipt. The resulting on-hand is floored at zero and the
// new value is returned.
func (r *SQL) UpsertOnHandTx(ctx context.Context, tx *sqlx.Tx, tenantID, skuID, location string, delta int64) (int64, error) {
	rec, err := r.GetForUpdateTx(ctx, tx, tenantID, skuID, location)
	if err != nil {
		return 0, err
	}

	if rec == nil {
		onHand := delta
		if onHand < 0 {
			onHand = 0
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO inventory (tenant_id, sku_id, location, on_hand, allocated) VALUES (?, ?, ?, ?, 0)",
			tenantID, skuID, location, onHand); err != nil {
			return 0, err
		}
		return onHand, nil
	}

	onHand := rec.OnHand + delta
	if onHand < 0 {
		onHand = 0
	}
	if _, err := tx.ExecContext(ctx, "UPDATE inventory SET on_hand = ? WHERE id = ?", onHand, rec.ID); err != nil {
		return 0, err
	}
	return onHand, nil
}

// NormalizeSkuIDs trims and de-duplicates a requested SKU set while
// preserving order.
func NormalizeSkuIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
