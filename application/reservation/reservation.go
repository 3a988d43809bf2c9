package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/distromax/inventory-api/cmd/config"
	"github.com/distromax/inventory-api/constant"
	"github.com/distromax/inventory-api/model"
	auditrepo "github.com/distromax/inventory-api/repository/audit"
	inventoryrepo "github.com/distromax/inventory-api/repository/inventory"
	orderrepo "github.com/distromax/inventory-api/repository/order"
	reservationrepo "github.com/distromax/inventory-api/repository/reservation"
	txrepo "github.com/distromax/inventory-api/repository/tx"
	"github.com/distromax/inventory-api/thirdparty/rabbitmq"
	"github.com/distromax/inventory-api/utils/errors"
	"github.com/distromax/inventory-api/utils/logger"
)

type ReservationApp interface {
	Commit(ctx context.Context, tenantID string, req *model.CommitReservationRequest) (*model.CommitReservationResponse, error)
	Release(ctx context.Context, tenantID, orderID string) (*model.ReleaseReservationsResponse, error)
	Ship(ctx context.Context, tenantID, orderID string, req *model.ShipOrderRequest) (*model.ShipOrderResponse, error)
}

type reservationAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	reservationRepo reservationrepo.ReservationRepository
	inventoryRepo   inventoryrepo.InventoryRepository
	orderRepo       orderrepo.OrderRepository
	auditRepo       auditrepo.AuditRepository
	publisher       *rabbitmq.Publisher
}

func NewReservationApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	reservationRepo reservationrepo.ReservationRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	orderRepo orderrepo.OrderRepository,
	auditRepo auditrepo.AuditRepository,
	publisher *rabbitmq.Publisher,
) ReservationApp {
	return &reservationAppImpl{
		config:          config,
		txRepo:          txRepo,
		reservationRepo: reservationRepo,
		inventoryRepo:   inventoryRepo,
		orderRepo:       orderRepo,
		auditRepo:       auditRepo,
		publisher:       publisher,
	}
}

// Commit creates the reservations for an order and increments the ledger's
// allocated quantity, all in one transaction. This is the producer side of
// the contract the sweeper relies on: a reservation row never exists
// without its matching allocation.
func (s *reservationAppImpl) Commit(ctx context.Context, tenantID string, req *model.CommitReservationRequest) (*model.CommitReservationResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.config.Reservation.TTL)
	reservationIDs := make([]string, 0, len(req.Items))

	err := s.txRepo.WithinTx(ctx, func(tx *sqlx.Tx) error {
		for _, item := range req.Items {
			rec, err := s.inventoryRepo.GetForUpdateTx(ctx, tx, tenantID, item.SkuID, req.Location)
			if err != nil {
				return err
			}
			if rec == nil {
				return errors.SetCustomError(constant.ErrNotFound)
			}
			if rec.Available() < item.Quantity {
				logger.Info("[Commit] insufficient stock",
					zap.String("sku_id", item.SkuID),
					zap.Int64("requested", item.Quantity),
					zap.Int64("available", rec.Available()))
				return errors.SetCustomError(constant.ErrInsufficientStock)
			}

			if err := s.inventoryRepo.IncrementAllocatedTx(ctx, tx, tenantID, item.SkuID, req.Location, item.Quantity); err != nil {
				return err
			}

			res := &model.Reservation{
				ID:        uuid.NewString(),
				TenantID:  tenantID,
				SkuID:     item.SkuID,
				OrderID:   req.OrderID,
				Location:  req.Location,
				Quantity:  item.Quantity,
				Status:    constant.ReservationStatusActive,
				CreatedAt: now,
				ExpiresAt: expiresAt,
			}
			if err := s.reservationRepo.InsertTx(ctx, tx, res); err != nil {
				return err
			}
			reservationIDs = append(reservationIDs, res.ID)

			if err := s.auditRepo.InsertTx(ctx, tx, model.NewAuditEntry(
				tenantID, constant.AuditEntityInventory, item.SkuID, constant.AuditActionAllocation,
				map[string]interface{}{
					"order_id":       req.OrderID,
					"reservation_id": res.ID,
					"quantity":       item.Quantity,
					"location":       req.Location,
					"expires_at":     expiresAt,
				},
			)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var ce errors.CustomError
		if errors.AsCustomError(err, &ce) {
			return nil, ce
		}
		logger.Error("[Commit] commit reservations", zap.String("order_id", req.OrderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CommitReservationResponse{
		OrderID:        req.OrderID,
		ReservationIDs: reservationIDs,
		ExpiresAt:      expiresAt,
	}, nil
}

// Release relinquishes every ACTIVE reservation of an order through the
// same atomic contract the sweeper uses: exact-row ledger decrement before
// the status transition, one transaction for the whole order.
func (s *reservationAppImpl) Release(ctx context.Context, tenantID, orderID string) (*model.ReleaseReservationsResponse, error) {
	now := time.Now().UTC()
	resp := &model.ReleaseReservationsResponse{OrderID: orderID}
	released := make([]model.Reservation, 0)

	err := s.txRepo.WithinTx(ctx, func(tx *sqlx.Tx) error {
		active, err := s.reservationRepo.ListActiveByOrderTx(ctx, tx, tenantID, orderID)
		if err != nil {
			return err
		}

		for i := range active {
			res := active[i]

			if err := s.inventoryRepo.DecrementAllocatedTx(ctx, tx, res.TenantID, res.SkuID, res.Location, res.Quantity); err != nil {
				var ce errors.CustomError
				if !errors.AsCustomError(err, &ce) || !ce.Is(constant.ErrInsufficientAllocation) {
					return err
				}
				logger.Warn("[Release] insufficient allocation on release",
					zap.String("reservation_id", res.ID),
					zap.String("sku_id", res.SkuID),
					zap.Int64("quantity", res.Quantity))
			}

			if err := s.reservationRepo.MarkReleasedTx(ctx, tx, res.ID, now); err != nil {
				return err
			}

			if err := s.auditRepo.InsertTx(ctx, tx, model.NewAuditEntry(
				res.TenantID, constant.AuditEntityInventory, res.SkuID, constant.AuditActionRelease,
				map[string]interface{}{
					"order_id":       orderID,
					"reservation_id": res.ID,
					"quantity":       res.Quantity,
					"location":       res.Location,
				},
			)); err != nil {
				return err
			}

			resp.Released++
			resp.InventoryReleased += res.Quantity
			released = append(released, res)
		}
		return nil
	})
	if err != nil {
		logger.Error("[Release] release reservations", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		for i := range released {
			res := released[i]
			msg := rabbitmq.ReservationEventMessage{
				ReservationID: res.ID,
				TenantID:      res.TenantID,
				OrderID:       res.OrderID,
				SkuID:         res.SkuID,
				Quantity:      res.Quantity,
				ReleasedAt:    now,
			}
			if err := s.publisher.PublishReservationReleased(msg); err != nil {
				logger.Error("[Release] publish reservation released",
					zap.String("reservation_id", res.ID),
					zap.String("error", err.Error()))
			}
		}
	}

	return resp, nil
}

// Ship fulfills a submitted order: every ACTIVE reservation's quantity
// leaves the ledger (on-hand and allocated together), the reservations are
// retired and the order moves to FULFILLED, all in one transaction. Unlike
// release and expiry, a ledger shortfall here is fatal: physical stock
// cannot ship against a claim the ledger does not carry.
func (s *reservationAppImpl) Ship(ctx context.Context, tenantID, orderID string, req *model.ShipOrderRequest) (*model.ShipOrderResponse, error) {
	now := time.Now().UTC()
	resp := &model.ShipOrderResponse{OrderID: orderID, TrackingNumber: req.TrackingNumber}

	err := s.txRepo.WithinTx(ctx, func(tx *sqlx.Tx) error {
		order, err := s.orderRepo.GetDetailTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order == nil || order.TenantID != tenantID {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if order.Status != constant.OrderStatusSubmitted {
			logger.Info("[Ship] order not shippable",
				zap.String("order_id", orderID),
				zap.String("status", order.Status.String()))
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}

		active, err := s.reservationRepo.ListActiveByOrderTx(ctx, tx, tenantID, orderID)
		if err != nil {
			return err
		}
		if len(active) == 0 {
			return errors.SetCustomError(constant.ErrReservationNotActive)
		}

		for i := range active {
			res := active[i]

			if err := s.inventoryRepo.ShipStockTx(ctx, tx, res.TenantID, res.SkuID, res.Location, res.Quantity); err != nil {
				return err
			}

			if err := s.reservationRepo.MarkReleasedTx(ctx, tx, res.ID, now); err != nil {
				return err
			}

			if err := s.auditRepo.InsertTx(ctx, tx, model.NewAuditEntry(
				res.TenantID, constant.AuditEntityInventory, res.SkuID, constant.AuditActionShipment,
				map[string]interface{}{
					"order_id":        orderID,
					"reservation_id":  res.ID,
					"quantity":        res.Quantity,
					"location":        res.Location,
					"tracking_number": req.TrackingNumber,
				},
			)); err != nil {
				return err
			}

			resp.Shipped++
			resp.QuantityShipped += res.Quantity
		}

		if err := s.orderRepo.UpdateStatusTx(ctx, tx, orderID, constant.OrderStatusFulfilled); err != nil {
			return err
		}

		return s.auditRepo.InsertTx(ctx, tx, model.NewAuditEntry(
			tenantID, constant.AuditEntityOrder, orderID, constant.AuditActionInventoryShipped,
			map[string]interface{}{
				"tracking_number": req.TrackingNumber,
				"reservations":    resp.Shipped,
				"previous_status": constant.OrderStatusSubmitted.String(),
			},
		))
	})
	if err != nil {
		var ce errors.CustomError
		if errors.AsCustomError(err, &ce) {
			return nil, ce
		}
		logger.Error("[Ship] ship order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return resp, nil
}
