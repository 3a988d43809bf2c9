package sweeper

import (
	"context"
	"time"

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

type SweeperApp interface {
	Sweep(ctx context.Context) (*model.SweepResult, error)
}

type sweeperAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	reservationRepo reservationrepo.ReservationRepository
	inventoryRepo   inventoryrepo.InventoryRepository
	orderRepo       orderrepo.OrderRepository
	auditRepo       auditrepo.AuditRepository
	publisher       *rabbitmq.Publisher
}

func NewSweeperApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	reservationRepo reservationrepo.ReservationRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	orderRepo orderrepo.OrderRepository,
	auditRepo auditrepo.AuditRepository,
	publisher *rabbitmq.Publisher,
) SweeperApp {
	return &sweeperAppImpl{
		config:          config,
		txRepo:          txRepo,
		reservationRepo: reservationRepo,
		inventoryRepo:   inventoryRepo,
		orderRepo:       orderRepo,
		auditRepo:       auditRepo,
		publisher:       publisher,
	}
}

// outcome of a single reservation's expiration transaction.
type expireOutcome struct {
	expired        bool
	anomaly        bool
	orderCancelled bool
}

// Sweep reclaims stock held by reservations whose window elapsed. The stale
// scan is a dirty read; every hit is re-validated under lock inside its own
// transaction, so concurrent sweeps or a racing explicit release leave
// nothing for this pass to do on that row. A failure on one reservation is
// logged and counted, never propagated: the next scheduled run retries.
func (s *sweeperAppImpl) Sweep(ctx context.Context) (*model.SweepResult, error) {
	now := time.Now().UTC()

	stale, err := s.reservationRepo.FindStaleActive(ctx, now, s.config.Reservation.SweepBatchSize)
	if err != nil {
		// The only fatal failure mode: the store cannot be queried at all.
		logger.Error("[Sweep] find stale reservations", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := &model.SweepResult{Timestamp: now}
	cancelledOrders := make(map[string]struct{})

	for i := range stale {
		res := stale[i]

		outcome, err := s.expireReservation(ctx, &res, now)
		if err != nil {
			logger.Error("[Sweep] expire reservation",
				zap.String("reservation_id", res.ID),
				zap.String("order_id", res.OrderID),
				zap.String("error", err.Error()))
			result.Failures++
			continue
		}
		if !outcome.expired {
			// Already handled by a racing release or sweep.
			continue
		}

		result.Processed++
		if outcome.anomaly {
			// The ledger absorbed nothing for this reservation, so its
			// quantity is not counted as released.
			result.Anomalies++
		} else {
			result.InventoryReleased += res.Quantity
		}
		if outcome.orderCancelled {
			cancelledOrders[res.OrderID] = struct{}{}
		}

		s.publishExpired(&res, outcome.orderCancelled, now)
	}

	result.OrdersAffected = len(cancelledOrders)

	logger.Info("[Sweep] pass complete",
		zap.Int("processed", result.Processed),
		zap.Int("orders_affected", result.OrdersAffected),
		zap.Int64("inventory_released", result.InventoryReleased),
		zap.Int("anomalies", result.Anomalies),
		zap.Int("failures", result.Failures))

	return result, nil
}

// expireReservation runs one reservation's release as a single atomic unit:
// ledger decrement happens before the status transition, and the order
// cancellation only after the reservation is confirmed void, all inside the
// same transaction.
func (s *sweeperAppImpl) expireReservation(ctx context.Context, res *model.Reservation, now time.Time) (*expireOutcome, error) {
	outcome := &expireOutcome{}

	err := s.txRepo.WithinTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.reservationRepo.GetForUpdateTx(ctx, tx, res.ID)
		if err != nil {
			return err
		}
		if current == nil || current.Status != constant.ReservationStatusActive || !current.IsExpired(now) {
			return nil
		}

		if err := s.inventoryRepo.DecrementAllocatedTx(ctx, tx, current.TenantID, current.SkuID, current.Location, current.Quantity); err != nil {
			var ce errors.CustomError
			if !errors.AsCustomError(err, &ce) || !ce.Is(constant.ErrInsufficientAllocation) {
				return err
			}
			// Ledger no longer carries this claim (externally corrected
			// row). The reservation's claim is void regardless; surface
			// the integrity signal and keep going.
			outcome.anomaly = true
			logger.Warn("[Sweep] insufficient allocation on release",
				zap.String("reservation_id", current.ID),
				zap.String("sku_id", current.SkuID),
				zap.Int64("quantity", current.Quantity))
		}

		if err := s.reservationRepo.MarkExpiredTx(ctx, tx, current.ID, now); err != nil {
			return err
		}
		outcome.expired = true

		if err := s.auditRepo.InsertTx(ctx, tx, model.NewAuditEntry(
			current.TenantID, constant.AuditEntityReservation, current.ID, constant.AuditActionExpired,
			map[string]interface{}{
				"order_id":  current.OrderID,
				"sku_id":    current.SkuID,
				"quantity":  current.Quantity,
				"location":  current.Location,
				"anomaly":   outcome.anomaly,
				"expiresAt": current.ExpiresAt,
			},
		)); err != nil {
			return err
		}

		return s.cancelProvisionalOrder(ctx, tx, current, now, outcome)
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// cancelProvisionalOrder cascades the expiration to the owning order when
// it has not progressed past a provisional state. Submitted or fulfilled
// orders are left untouched.
func (s *sweeperAppImpl) cancelProvisionalOrder(ctx context.Context, tx *sqlx.Tx, res *model.Reservation, now time.Time, outcome *expireOutcome) error {
	order, err := s.orderRepo.GetDetailTx(ctx, tx, res.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		logger.Warn("[Sweep] owning order not found",
			zap.String("reservation_id", res.ID),
			zap.String("order_id", res.OrderID))
		return nil
	}
	if !order.Status.IsProvisional() {
		return nil
	}

	if err := s.orderRepo.UpdateStatusTx(ctx, tx, order.ID, constant.OrderStatusCancelled); err != nil {
		return err
	}
	outcome.orderCancelled = true

	return s.auditRepo.InsertTx(ctx, tx, model.NewAuditEntry(
		res.TenantID, constant.AuditEntityOrder, order.ID, constant.AuditActionAutoCancelOrder,
		map[string]interface{}{
			"reason":          "reservation expired",
			"reservation_id":  res.ID,
			"sku_id":          res.SkuID,
			"quantity":        res.Quantity,
			"previous_status": order.Status.String(),
			"expired_at":      now,
		},
	))
}

func (s *sweeperAppImpl) publishExpired(res *model.Reservation, orderCancelled bool, now time.Time) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.ReservationEventMessage{
		ReservationID:  res.ID,
		TenantID:       res.TenantID,
		OrderID:        res.OrderID,
		SkuID:          res.SkuID,
		Quantity:       res.Quantity,
		OrderCancelled: orderCancelled,
		ReleasedAt:     now,
	}
	if err := s.publisher.PublishReservationExpired(msg); err != nil {
		logger.Error("[Sweep] publish reservation expired",
			zap.String("reservation_id", res.ID),
			zap.String("error", err.Error()))
	}
}
