package context

import (
	"context"

	"github.com/distromax/inventory-api/constant"
)

func GetTenantID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.TenantIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, constant.TenantIDKey, tenantID)
}
