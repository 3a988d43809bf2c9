package constant

type OrderStatus int

const (
	OrderStatusDraft     OrderStatus = 1
	OrderStatusPending   OrderStatus = 2
	OrderStatusSubmitted OrderStatus = 3
	OrderStatusFulfilled OrderStatus = 4
	OrderStatusCancelled OrderStatus = 5
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusDraft:
		return "DRAFT"
	case OrderStatusPending:
		return "PENDING"
	case OrderStatusSubmitted:
		return "SUBMITTED"
	case OrderStatusFulfilled:
		return "FULFILLED"
	case OrderStatusCancelled:
		return "CANCELLED"
	}
	return "UNKNOWN"
}

// IsProvisional reports whether an order is still eligible for automatic
// cancellation when its reservations expire. Once an order is submitted it
// keeps its status even if a stale reservation is reclaimed.
func (s OrderStatus) IsProvisional() bool {
	return s == OrderStatusDraft || s == OrderStatusPending
}
