package audit

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/distromax/inventory-api/model"
)

type AuditRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, entry *model.AuditEntry) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewAuditRepository(conn *sqlx.DB) AuditRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, entry *model.AuditEntry) error {
	q := "INSERT INTO audit_log (tenant_id, entity_type, entity_id, action, metadata) VALUES (?, ?, ?, ?, ?)"
	_, err := tx.ExecContext(ctx, q,
		entry.TenantID, entry.EntityType, entry.EntityID, entry.Action, []byte(entry.Metadata))
	return err
}
