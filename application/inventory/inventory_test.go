package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appinventory "github.com/distromax/inventory-api/application/inventory"
	"github.com/distromax/inventory-api/constant"
	auditmocks "github.com/distromax/inventory-api/mocks/repository/audit"
	inventorymocks "github.com/distromax/inventory-api/mocks/repository/inventory"
	txmocks "github.com/distromax/inventory-api/mocks/repository/tx"
	"github.com/distromax/inventory-api/model"
	cerr "github.com/distromax/inventory-api/utils/errors"
)

type inventoryFields struct {
	txRepo        *txmocks.TxRepository
	inventoryRepo *inventorymocks.InventoryRepository
	auditRepo     *auditmocks.AuditRepository
}

func newInventoryFields(t *testing.T) inventoryFields {
	return inventoryFields{
		txRepo:        txmocks.NewTxRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
		auditRepo:     auditmocks.NewAuditRepository(t),
	}
}

func runInTx(m *txmocks.TxRepository) {
	m.On("WithinTx", mock.Anything, mock.AnythingOfType("func(*sqlx.Tx) error")).
		Return(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
			return fn(&sqlx.Tx{})
		})
}

func TestInventoryApp_Adjust(t *testing.T) {
	tests := []struct {
		name       string
		req        *model.AdjustInventoryRequest
		mockCall   func(f inventoryFields)
		wantOnHand int64
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: positive receipt",
			req:  &model.AdjustInventoryRequest{SkuID: "SKU-IPA-12", Location: "main", Quantity: 50, Reason: "delivery"},
			mockCall: func(f inventoryFields) {
				runInTx(f.txRepo)
				f.inventoryRepo.
					On("UpsertOnHandTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main", int64(50)).
					Return(int64(150), nil).
					Once()
				f.auditRepo.
					On("InsertTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AuditEntry")).
					Return(nil).
					Once()
			},
			wantOnHand: 150,
		},
		{
			name: "success: write-off floors at zero",
			req:  &model.AdjustInventoryRequest{SkuID: "SKU-IPA-12", Location: "main", Quantity: -500, Reason: "breakage"},
			mockCall: func(f inventoryFields) {
				runInTx(f.txRepo)
				f.inventoryRepo.
					On("UpsertOnHandTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main", int64(-500)).
					Return(int64(0), nil).
					Once()
				f.auditRepo.
					On("InsertTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AuditEntry")).
					Return(nil).
					Once()
			},
			wantOnHand: 0,
		},
		{
			name:     "error: zero adjustment",
			req:      &model.AdjustInventoryRequest{SkuID: "SKU-IPA-12", Location: "main", Quantity: 0, Reason: "noop"},
			mockCall: func(f inventoryFields) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: repository failure",
			req:  &model.AdjustInventoryRequest{SkuID: "SKU-IPA-12", Location: "main", Quantity: 10, Reason: "delivery"},
			mockCall: func(f inventoryFields) {
				runInTx(f.txRepo)
				f.inventoryRepo.
					On("UpsertOnHandTx", mock.Anything, mock.Anything, "tenant-1", "SKU-IPA-12", "main", int64(10)).
					Return(int64(0), errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newInventoryFields(t)
			tt.mockCall(f)
			app := appinventory.NewInventoryApp(f.txRepo, f.inventoryRepo, f.auditRepo)

			got, err := app.Adjust(context.Background(), "tenant-1", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Adjust() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.OnHand != tt.wantOnHand {
				t.Fatalf("OnHand = %d, want %d", got.OnHand, tt.wantOnHand)
			}
			if got.SkuID != tt.req.SkuID || got.Location != tt.req.Location {
				t.Fatalf("echoed identity = %s/%s, want %s/%s", got.SkuID, got.Location, tt.req.SkuID, tt.req.Location)
			}
		})
	}
}

func TestInventoryApp_GetAggregate(t *testing.T) {
	tests := []struct {
		name     string
		skuIDs   []string
		location string
		mockCall func(f inventoryFields)
		wantLen  int
		wantErr  bool
	}{
		{
			name:   "success",
			skuIDs: []string{"SKU-IPA-12", " SKU-IPA-12 ", "SKU-LAGER-24"},
			mockCall: func(f inventoryFields) {
				f.inventoryRepo.
					On("GetAggregate", mock.Anything, "tenant-1", []string{"SKU-IPA-12", "SKU-LAGER-24"}, "").
					Return(map[string]*model.AggregateStock{
						"SKU-IPA-12":   {OnHand: 100, Allocated: 30, Locations: []string{"main"}},
						"SKU-LAGER-24": {OnHand: 25, Allocated: 0, Locations: []string{"main"}},
					}, nil).
					Once()
			},
			wantLen: 2,
		},
		{
			name:     "error: nothing to look up after normalization",
			skuIDs:   []string{"", "   "},
			mockCall: func(f inventoryFields) {},
			wantErr:  true,
		},
		{
			name:   "error: repository failure",
			skuIDs: []string{"SKU-IPA-12"},
			mockCall: func(f inventoryFields) {
				f.inventoryRepo.
					On("GetAggregate", mock.Anything, "tenant-1", []string{"SKU-IPA-12"}, "").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newInventoryFields(t)
			tt.mockCall(f)
			app := appinventory.NewInventoryApp(f.txRepo, f.inventoryRepo, f.auditRepo)

			got, err := app.GetAggregate(context.Background(), "tenant-1", tt.skuIDs, tt.location)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetAggregate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}
