package constant

type ContextKey string

// TenantIDKey carries the authenticated tenant through the request context.
const TenantIDKey ContextKey = "tenant_id"
