package reservation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appreservation "github.com/distromax/inventory-api/application/reservation"
	"github.com/distromax/inventory-api/cmd/config"
	"github.com/distromax/inventory-api/constant"
	auditmocks "github.com/distromax/inventory-api/mocks/repository/audit"
	inventorymocks "github.com/distromax/inventory-api/mocks/repository/inventory"
	ordermocks "github.com/distromax/inventory-api/mocks/repository/order"
	reservationmocks "github.com/distromax/inventory-api/mocks/repository/reservation"
	txmocks "github.com/distromax/inventory-api/mocks/repository/tx"
	"github.com/distromax/inventory-api/model"
	cerr "github.com/distromax/inventory-api/utils/errors"
)

func reservationConfig() *config.Config {
	return &config.Config{
		Reservation: config.ReservationConfig{
			TTL: constant.DefaultReservationTTL,
		},
	}
}

func runInTx(m *txmocks.TxRepository) {
	m.On("WithinTx", mock.Anything, mock.AnythingOfType("func(*sqlx.Tx) error")).
		Return(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
			return fn(&sqlx.Tx{})
		})
}

type reservationFields struct {
	txRepo          *txmocks.TxRepository
	reservationRepo *reservationmocks.ReservationRepository
	inventoryRepo   *inventorymocks.InventoryRepository
	orderRepo       *ordermocks.OrderRepository
	auditRepo       *auditmocks.AuditRepository
}

func newReservationFields(t *testing.T) reservationFields {
	return reservationFields{
		txRepo:          txmocks.NewTxRepository(t),
		reservationRepo: reservationmocks.NewReservationRepository(t),
		inventoryRepo:   inventorymocks.NewInventoryRepository(t),
		orderRepo:       ordermocks.NewOrderRepository(t),
		auditRepo:       auditmocks.NewAuditRepository(t),
	}
}

func newReservationApp(f reservationFields) appreservation.ReservationApp {
	return appreservation.NewReservationApp(
		reservationConfig(),
		f.txRepo,
		f.reservationRepo,
		f.inventoryRepo,
		f.orderRepo,
		f.auditRepo,
		nil,
	)
}

func TestReservationApp_Commit(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CommitReservationRequest
		mockCall func(f reservationFields)
		wantIDs  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: every line allocated and reserved",
			req: &model.CommitReservationRequest{
				OrderID:  "order-1",
				Location: "main",
				Items: []model.CommitItemRequest{
					{SkuID: "SKU-IPA-12", Quantity: 20},
					{SkuID: "SKU-LAGER-24", Quantity: 5},
				},
			},
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.inventoryRepo.
					On("GetForUpdateTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main").
					Return(&model.InventoryRecord{TenantID: "tenant-1", SkuID: "SKU-IPA-12", Location: "main", OnHand: 100, Allocated: 30}, nil).
					Once()
				f.inventoryRepo.
					On("IncrementAllocatedTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main", int64(20)).
					Return(nil).
					Once()
				f.inventoryRepo.
					On("GetForUpdateTx", mock.Anything, mock.Anything, "tenant-1", "SKU-LAGER-24", "main").
					Return(&model.InventoryRecord{TenantID: "tenant-1", SkuID: "SKU-LAGER-24", Location: "main", OnHand: 25, Allocated: 0}, nil).
					Once()
				f.inventoryRepo.
					On("IncrementAllocatedTx", mock.Anything, mock.Anything, "tenant-1", "SKU-LAGER-24", "main", int64(5)).
					Return(nil).
					Once()
				f.reservationRepo.
					On("InsertTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Reservation")).
					Return(nil).
					Times(2)
				f.auditRepo.
					On("InsertTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AuditEntry")).
					Return(nil).
					Times(2)
			},
			wantIDs: 2,
		},
		{
			name: "error: empty items",
			req: &model.CommitReservationRequest{
				OrderID:  "order-1",
				Location: "main",
			},
			mockCall: func(f reservationFields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown ledger row",
			req: &model.CommitReservationRequest{
				OrderID:  "order-1",
				Location: "main",
				Items: []model.CommitItemRequest{
					{SkuID: "SKU-GHOST", Quantity: 1},
				},
			},
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.inventoryRepo.
					On("GetForUpdateTx", mock.Anything, mock.Anything, "tenant-1", "SKU-GHOST", "main").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: insufficient stock rolls back the whole order",
			req: &model.CommitReservationRequest{
				OrderID:  "order-1",
				Location: "main",
				Items: []model.CommitItemRequest{
					{SkuID: "SKU-IPA-12", Quantity: 75},
				},
			},
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.inventoryRepo.
					On("GetForUpdateTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main").
					Return(&model.InventoryRecord{TenantID: "tenant-1", SkuID: "SKU-IPA-12", Location: "main", OnHand: 100, Allocated: 30}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: repository failure maps to internal",
			req: &model.CommitReservationRequest{
				OrderID:  "order-1",
				Location: "main",
				Items: []model.CommitItemRequest{
					{SkuID: "SKU-IPA-12", Quantity: 1},
				},
			},
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.inventoryRepo.
					On("GetForUpdateTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newReservationFields(t)
			tt.mockCall(f)
			app := newReservationApp(f)

			got, err := app.Commit(context.Background(), "tenant-1", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Commit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if !ce.Is(tt.errCode) {
					t.Fatalf("error = %v, want type %v", err, tt.errCode)
				}
				return
			}

			if got.OrderID != tt.req.OrderID {
				t.Fatalf("OrderID = %s, want %s", got.OrderID, tt.req.OrderID)
			}
			if len(got.ReservationIDs) != tt.wantIDs {
				t.Fatalf("len(ReservationIDs) = %d, want %d", len(got.ReservationIDs), tt.wantIDs)
			}
			if !got.ExpiresAt.After(time.Now().UTC().Add(47 * time.Hour)) {
				t.Fatalf("ExpiresAt = %v, want roughly two days out", got.ExpiresAt)
			}
		})
	}
}

func TestReservationApp_Release(t *testing.T) {
	active := func(id, skuID string, qty int64) model.Reservation {
		return model.Reservation{
			ID:        id,
			TenantID:  "tenant-1",
			SkuID:     skuID,
			OrderID:   "order-1",
			Location:  "main",
			Quantity:  qty,
			Status:    constant.ReservationStatusActive,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}
	}
	tests := []struct {
		name         string
		mockCall     func(f reservationFields)
		wantReleased int
		wantQty      int64
		wantErr      bool
	}{
		{
			name: "success: all active reservations released",
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.reservationRepo.
					On("ListActiveByOrderTx", mock.Anything, mock.Anything, "tenant-1", "order-1").
					Return([]model.Reservation{
						active("res-1", "SKU-IPA-12", 20),
						active("res-2", "SKU-LAGER-24", 5),
					}, nil).
					Once()
				f.inventoryRepo.
					On("DecrementAllocatedTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main", int64(20)).
					Return(nil).
					Once()
				f.inventoryRepo.
					On("DecrementAllocatedTx", mock.Anything, mock.Anything, "tenant-1", "SKU-LAGER-24", "main", int64(5)).
					Return(nil).
					Once()
				f.reservationRepo.
					On("MarkReleasedTx", mock.Anything, mock.Anything, "res-1", mock.AnythingOfType("time.Time")).
					Return(nil).
					Once()
				f.reservationRepo.
					On("MarkReleasedTx", mock.Anything, mock.Anything, "res-2", mock.AnythingOfType("time.Time")).
					Return(nil).
					Once()
				f.auditRepo.
					On("InsertTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AuditEntry")).
					Return(nil).
					Times(2)
			},
			wantReleased: 2,
			wantQty:      25,
		},
		{
			name: "success: no active reservations is a no-op",
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.reservationRepo.
					On("ListActiveByOrderTx", mock.Anything, mock.Anything, "tenant-1", "order-1").
					Return([]model.Reservation{}, nil).
					Once()
			},
		},
		{
			name: "success: ledger shortfall on one row does not abort the release",
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.reservationRepo.
					On("ListActiveByOrderTx", mock.Anything, mock.Anything, "tenant-1", "order-1").
					Return([]model.Reservation{active("res-1", "SKU-IPA-12", 20)}, nil).
					Once()
				f.inventoryRepo.
					On("DecrementAllocatedTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main", int64(20)).
					Return(cerr.SetCustomError(constant.ErrInsufficientAllocation)).
					Once()
				f.reservationRepo.
					On("MarkReleasedTx", mock.Anything, mock.Anything, "res-1", mock.AnythingOfType("time.Time")).
					Return(nil).
					Once()
				f.auditRepo.
					On("InsertTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AuditEntry")).
					Return(nil).
					Once()
			},
			wantReleased: 1,
			wantQty:      20,
		},
		{
			name: "error: listing fails",
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.reservationRepo.
					On("ListActiveByOrderTx", mock.Anything, mock.Anything, "tenant-1", "order-1").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newReservationFields(t)
			tt.mockCall(f)
			app := newReservationApp(f)

			got, err := app.Release(context.Background(), "tenant-1", "order-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Release() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if got.Released != tt.wantReleased {
				t.Fatalf("Released = %d, want %d", got.Released, tt.wantReleased)
			}
			if got.InventoryReleased != tt.wantQty {
				t.Fatalf("InventoryReleased = %d, want %d", got.InventoryReleased, tt.wantQty)
			}
		})
	}
}

func TestReservationApp_Ship(t *testing.T) {
	active := func(id, skuID string, qty int64) model.Reservation {
		return model.Reservation{
			ID:        id,
			TenantID:  "tenant-1",
			SkuID:     skuID,
			OrderID:   "order-1",
			Location:  "main",
			Quantity:  qty,
			Status:    constant.ReservationStatusActive,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}
	}
	submitted := &model.OrderDetail{ID: "order-1", TenantID: "tenant-1", Status: constant.OrderStatusSubmitted}
	req := &model.ShipOrderRequest{TrackingNumber: "TRK-001"}

	tests := []struct {
		name        string
		mockCall    func(f reservationFields)
		wantShipped int
		wantQty     int64
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name: "success: stock leaves the ledger and the order is fulfilled",
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.orderRepo.
					On("GetDetailTx", mock.Anything, mock.Anything, "order-1").
					Return(submitted, nil).
					Once()
				f.reservationRepo.
					On("ListActiveByOrderTx", mock.Anything, mock.Anything, "tenant-1", "order-1").
					Return([]model.Reservation{
						active("res-1", "SKU-IPA-12", 20),
						active("res-2", "SKU-LAGER-24", 5),
					}, nil).
					Once()
				f.inventoryRepo.
					On("ShipStockTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main", int64(20)).
					Return(nil).
					Once()
				f.inventoryRepo.
					On("ShipStockTx", mock.Anything, mock.Anything, "tenant-1", "SKU-LAGER-24", "main", int64(5)).
					Return(nil).
					Once()
				f.reservationRepo.
					On("MarkReleasedTx", mock.Anything, mock.Anything, "res-1", mock.AnythingOfType("time.Time")).
					Return(nil).
					Once()
				f.reservationRepo.
					On("MarkReleasedTx", mock.Anything, mock.Anything, "res-2", mock.AnythingOfType("time.Time")).
					Return(nil).
					Once()
				f.orderRepo.
					On("UpdateStatusTx", mock.Anything, mock.Anything, "order-1", constant.OrderStatusFulfilled).
					Return(nil).
					Once()
				f.auditRepo.
					On("InsertTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AuditEntry")).
					Return(nil).
					Times(3)
			},
			wantShipped: 2,
			wantQty:     25,
		},
		{
			name: "error: unknown order",
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.orderRepo.
					On("GetDetailTx", mock.Anything, mock.Anything, "order-1").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: draft order cannot ship",
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.orderRepo.
					On("GetDetailTx", mock.Anything, mock.Anything, "order-1").
					Return(&model.OrderDetail{ID: "order-1", TenantID: "tenant-1", Status: constant.OrderStatusDraft}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name: "error: no active reservations to ship against",
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.orderRepo.
					On("GetDetailTx", mock.Anything, mock.Anything, "order-1").
					Return(submitted, nil).
					Once()
				f.reservationRepo.
					On("ListActiveByOrderTx", mock.Anything, mock.Anything, "tenant-1", "order-1").
					Return([]model.Reservation{}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrReservationNotActive,
		},
		{
			name: "error: ledger shortfall aborts the whole shipment",
			mockCall: func(f reservationFields) {
				runInTx(f.txRepo)
				f.orderRepo.
					On("GetDetailTx", mock.Anything, mock.Anything, "order-1").
					Return(submitted, nil).
					Once()
				f.reservationRepo.
					On("ListActiveByOrderTx", mock.Anything, mock.Anything, "tenant-1", "order-1").
					Return([]model.Reservation{active("res-1", "SKU-IPA-12", 20)}, nil).
					Once()
				f.inventoryRepo.
					On("ShipStockTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main", int64(20)).
					Return(cerr.SetCustomError(constant.ErrInsufficientAllocation)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientAllocation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newReservationFields(t)
			tt.mockCall(f)
			app := newReservationApp(f)

			got, err := app.Ship(context.Background(), "tenant-1", "order-1", req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Ship() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if !ce.Is(tt.errCode) {
					t.Fatalf("error = %v, want type %v", err, tt.errCode)
				}
				return
			}

			if got.Shipped != tt.wantShipped {
				t.Fatalf("Shipped = %d, want %d", got.Shipped, tt.wantShipped)
			}
			if got.QuantityShipped != tt.wantQty {
				t.Fatalf("QuantityShipped = %d, want %d", got.QuantityShipped, tt.wantQty)
			}
			if got.TrackingNumber != req.TrackingNumber {
				t.Fatalf("TrackingNumber = %s, want %s", got.TrackingNumber, req.TrackingNumber)
			}
		})
	}
}
