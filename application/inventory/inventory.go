package inventory

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/distromax/inventory-api/constant"
	"github.com/distromax/inventory-api/model"
	auditrepo "github.com/distromax/inventory-api/repository/audit"
	inventoryrepo "github.com/distromax/inventory-api/repository/inventory"
	txrepo "github.com/distromax/inventory-api/repository/tx"
	"github.com/distromax/inventory-api/utils/errors"
	"github.com/distromax/inventory-api/utils/logger"
)

type InventoryApp interface {
	Adjust(ctx context.Context, tenantID string, req *model.AdjustInventoryRequest) (*model.AdjustInventoryResponse, error)
	GetAggregate(ctx context.Context, tenantID string, skuIDs []string, location string) (map[string]*model.AggregateStock, error)
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	auditRepo     auditrepo.AuditRepository
}

func NewInventoryApp(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, auditRepo auditrepo.AuditRepository) InventoryApp {
	return &inventoryAppImpl{
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
	}
}

// Adjust applies a signed on-hand correction (receipt, write-off, cycle
// count) with its audit entry in one transaction. On-hand never goes below
// zero; allocated is untouched.
func (s *inventoryAppImpl) Adjust(ctx context.Context, tenantID string, req *model.AdjustInventoryRequest) (*model.AdjustInventoryResponse, error) {
	if req.Quantity == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var onHand int64
	err := s.txRepo.WithinTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		onHand, err = s.inventoryRepo.UpsertOnHandTx(ctx, tx, tenantID, req.SkuID, req.Location, req.Quantity)
		if err != nil {
			return err
		}

		return s.auditRepo.InsertTx(ctx, tx, model.NewAuditEntry(
			tenantID, constant.AuditEntityInventory, req.SkuID, constant.AuditActionAdjustment,
			map[string]interface{}{
				"location":   req.Location,
				"adjustment": req.Quantity,
				"reason":     req.Reason,
				"on_hand":    onHand,
			},
		))
	})
	if err != nil {
		logger.Error("[Adjust] adjust inventory",
			zap.String("sku_id", req.SkuID),
			zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AdjustInventoryResponse{
		SkuID:    req.SkuID,
		Location: req.Location,
		OnHand:   onHand,
	}, nil
}

func (s *inventoryAppImpl) GetAggregate(ctx context.Context, tenantID string, skuIDs []string, location string) (map[string]*model.AggregateStock, error) {
	skuIDs = inventoryrepo.NormalizeSkuIDs(skuIDs)
	if len(skuIDs) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	agg, err := s.inventoryRepo.GetAggregate(ctx, tenantID, skuIDs, location)
	if err != nil {
		logger.Error("[GetAggregate] get aggregate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return agg, nil
}
