package model

type AvailabilityItemRequest struct {
	SkuID    string `json:"sku_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type AvailabilityRequest struct {
	Items    []AvailabilityItemRequest `json:"items" validate:"required,min=1,dive"`
	Location string                    `json:"location"`
}

// AvailabilityResult is the derived snapshot for one requested line. For a
// SKU with no ledger rows Known is false and all quantities are zero.
type AvailabilityResult struct {
	SkuID        string   `json:"sku_id"`
	Known        bool     `json:"known"`
	OnHand       int64    `json:"on_hand"`
	Allocated    int64    `json:"allocated"`
	Available    int64    `json:"available"`
	Requested    int64    `json:"requested"`
	Sufficient   bool     `json:"sufficient"`
	WarningLevel string   `json:"warning_level"`
	Shortfall    int64    `json:"shortfall"`
	Locations    []string `json:"locations"`
}

type AvailabilitySummary struct {
	TotalItems        int  `json:"total_items"`
	SufficientItems   int  `json:"sufficient_items"`
	InsufficientItems int  `json:"insufficient_items"`
	RequiresApproval  bool `json:"requires_approval"`
}

type AvailabilityResponse struct {
	Results []AvailabilityResult `json:"results"`
	Summary AvailabilitySummary  `json:"summary"`
}
