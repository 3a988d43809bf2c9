package model

import "encoding/json"

// AuditEntry is appended for operator visibility whenever the engine
// mutates the ledger or cancels an order. Metadata is free-form JSON.
type AuditEntry struct {
	TenantID   string          `db:"tenant_id"`
	EntityType string          `db:"entity_type"`
	EntityID   string          `db:"entity_id"`
	Action     string          `db:"action"`
	Metadata   json.RawMessage `db:"metadata"`
}

// NewAuditEntry marshals metadata and builds an entry. Marshal failures are
// swallowed into an empty object so an audit write never blocks the
// surrounding transaction.
func NewAuditEntry(tenantID, entityType, entityID, action string, metadata map[string]interface{}) *AuditEntry {
	raw, err := json.Marshal(metadata)
	if err != nil {
		raw = []byte("{}")
	}
	return &AuditEntry{
		TenantID:   tenantID,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Metadata:   raw,
	}
}
