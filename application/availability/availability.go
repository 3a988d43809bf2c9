package availability

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/distromax/inventory-api/constant"
	"github.com/distromax/inventory-api/model"
	inventoryrepo "github.com/distromax/inventory-api/repository/inventory"
	"github.com/distromax/inventory-api/utils/errors"
	"github.com/distromax/inventory-api/utils/logger"
)

type AvailabilityApp interface {
	Check(ctx context.Context, tenantID string, req *model.AvailabilityRequest) (*model.AvailabilityResponse, error)
}

type availabilityAppImpl struct {
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewAvailabilityApp(inventoryRepo inventoryrepo.InventoryRepository) AvailabilityApp {
	return &availabilityAppImpl{inventoryRepo: inventoryRepo}
}

// Check is a pure read-side projection of the ledger: one batched read,
// then per-line classification. It issues no writes and takes no locks, so
// it is safe at arbitrary concurrency; results are as fresh as the last
// committed ledger write.
func (s *availabilityAppImpl) Check(ctx context.Context, tenantID string, req *model.AvailabilityRequest) (*model.AvailabilityResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// Trim once so the per-line lookup matches the queried set.
	items := make([]model.AvailabilityItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		item.SkuID = strings.TrimSpace(item.SkuID)
		if item.SkuID == "" || item.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		items = append(items, item)
	}

	skuIDs := make([]string, 0, len(items))
	for _, item := range items {
		skuIDs = append(skuIDs, item.SkuID)
	}
	skuIDs = inventoryrepo.NormalizeSkuIDs(skuIDs)

	agg, err := s.inventoryRepo.GetAggregate(ctx, tenantID, skuIDs, req.Location)
	if err != nil {
		logger.Error("[Check] get aggregate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.AvailabilityResponse{
		Results: make([]model.AvailabilityResult, 0, len(items)),
	}

	for _, item := range items {
		result := classifyLine(item, agg[item.SkuID])
		resp.Results = append(resp.Results, result)

		resp.Summary.TotalItems++
		if result.Sufficient {
			resp.Summary.SufficientItems++
		} else {
			resp.Summary.InsufficientItems++
			resp.Summary.RequiresApproval = true
		}
	}

	return resp, nil
}

// classifyLine derives the availability snapshot for one requested line.
// Unknown SKUs are data, not errors: they come back as zero-availability
// snapshots and the caller decides how to render them.
func classifyLine(item model.AvailabilityItemRequest, stock *model.AggregateStock) model.AvailabilityResult {
	result := model.AvailabilityResult{
		SkuID:     item.SkuID,
		Requested: item.Quantity,
		Locations: []string{},
	}

	if stock != nil {
		result.Known = true
		result.OnHand = stock.OnHand
		result.Allocated = stock.Allocated
		result.Locations = stock.Locations
	}

	available := result.OnHand - result.Allocated
	if available < 0 {
		available = 0
	}
	result.Available = available
	result.Sufficient = available >= item.Quantity

	switch {
	case !result.Sufficient:
		result.WarningLevel = constant.WarningLevelCritical
		result.Shortfall = item.Quantity - available
	case available < item.Quantity+constant.LowStockBuffer:
		result.WarningLevel = constant.WarningLevelLow
	default:
		result.WarningLevel = constant.WarningLevelNone
	}

	return result
}
