package availability_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	appavailability "github.com/distromax/inventory-api/application/availability"
	"github.com/distromax/inventory-api/constant"
	inventorymocks "github.com/distromax/inventory-api/mocks/repository/inventory"
	"github.com/distromax/inventory-api/model"
	cerr "github.com/distromax/inventory-api/utils/errors"
)

func TestAvailabilityApp_Check(t *testing.T) {
	type fields struct {
		inventoryRepo *inventorymocks.InventoryRepository
	}
	type args struct {
		ctx      context.Context
		tenantID string
		req      *model.AvailabilityRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.AvailabilityResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: sufficient line with no warning",
			fields: fields{
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				tenantID: "tenant-1",
				req: &model.AvailabilityRequest{
					Items: []model.AvailabilityItemRequest{
						{SkuID: "SKU-IPA-12", Quantity: 50},
					},
				},
			},
			mockCall: func(f fields) {
				f.inventoryRepo.
					On("GetAggregate", mock.Anything, "tenant-1", []string{"SKU-IPA-12"}, "").
					Return(map[string]*model.AggregateStock{
						"SKU-IPA-12": {OnHand: 100, Allocated: 30, Locations: []string{"main"}},
					}, nil).
					Once()
			},
			want: &model.AvailabilityResponse{
				Results: []model.AvailabilityResult{
					{
						SkuID:        "SKU-IPA-12",
						Known:        true,
						OnHand:       100,
						Allocated:    30,
						Available:    70,
						Requested:    50,
						Sufficient:   true,
						WarningLevel: constant.WarningLevelNone,
						Locations:    []string{"main"},
					},
				},
				Summary: model.AvailabilitySummary{
					TotalItems:      1,
					SufficientItems: 1,
				},
			},
		},
		{
			name: "success: insufficient line is critical with shortfall",
			fields: fields{
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				tenantID: "tenant-1",
				req: &model.AvailabilityRequest{
					Items: []model.AvailabilityItemRequest{
						{SkuID: "SKU-IPA-12", Quantity: 75},
					},
				},
			},
			mockCall: func(f fields) {
				f.inventoryRepo.
					On("GetAggregate", mock.Anything, "tenant-1", []string{"SKU-IPA-12"}, "").
					Return(map[string]*model.AggregateStock{
						"SKU-IPA-12": {OnHand: 100, Allocated: 30, Locations: []string{"main"}},
					}, nil).
					Once()
			},
			want: &model.AvailabilityResponse{
				Results: []model.AvailabilityResult{
					{
						SkuID:        "SKU-IPA-12",
						Known:        true,
						OnHand:       100,
						Allocated:    30,
						Available:    70,
						Requested:    75,
						Sufficient:   false,
						WarningLevel: constant.WarningLevelCritical,
						Shortfall:    5,
						Locations:    []string{"main"},
					},
				},
				Summary: model.AvailabilitySummary{
					TotalItems:        1,
					InsufficientItems: 1,
					RequiresApproval:  true,
				},
			},
		},
		{
			name: "success: sufficient but inside low-stock buffer",
			fields: fields{
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				tenantID: "tenant-1",
				req: &model.AvailabilityRequest{
					Items: []model.AvailabilityItemRequest{
						{SkuID: "SKU-IPA-12", Quantity: 65},
					},
				},
			},
			mockCall: func(f fields) {
				f.inventoryRepo.
					On("GetAggregate", mock.Anything, "tenant-1", []string{"SKU-IPA-12"}, "").
					Return(map[string]*model.AggregateStock{
						"SKU-IPA-12": {OnHand: 100, Allocated: 30, Locations: []string{"main"}},
					}, nil).
					Once()
			},
			want: &model.AvailabilityResponse{
				Results: []model.AvailabilityResult{
					{
						SkuID:        "SKU-IPA-12",
						Known:        true,
						OnHand:       100,
						Allocated:    30,
						Available:    70,
						Requested:    65,
						Sufficient:   true,
						WarningLevel: constant.WarningLevelLow,
						Locations:    []string{"main"},
					},
				},
				Summary: model.AvailabilitySummary{
					TotalItems:      1,
					SufficientItems: 1,
				},
			},
		},
		{
			name: "success: padded SKU id resolves to its ledger rows",
			fields: fields{
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				tenantID: "tenant-1",
				req: &model.AvailabilityRequest{
					Items: []model.AvailabilityItemRequest{
						{SkuID: "  SKU-IPA-12  ", Quantity: 50},
					},
				},
			},
			mockCall: func(f fields) {
				f.inventoryRepo.
					On("GetAggregate", mock.Anything, "tenant-1", []string{"SKU-IPA-12"}, "").
					Return(map[string]*model.AggregateStock{
						"SKU-IPA-12": {OnHand: 100, Allocated: 30, Locations: []string{"main"}},
					}, nil).
					Once()
			},
			want: &model.AvailabilityResponse{
				Results: []model.AvailabilityResult{
					{
						SkuID:        "SKU-IPA-12",
						Known:        true,
						OnHand:       100,
						Allocated:    30,
						Available:    70,
						Requested:    50,
						Sufficient:   true,
						WarningLevel: constant.WarningLevelNone,
						Locations:    []string{"main"},
					},
				},
				Summary: model.AvailabilitySummary{
					TotalItems:      1,
					SufficientItems: 1,
				},
			},
		},
		{
			name: "success: unknown SKU yields zero snapshot, not an error",
			fields: fields{
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				tenantID: "tenant-1",
				req: &model.AvailabilityRequest{
					Items: []model.AvailabilityItemRequest{
						{SkuID: "SKU-GHOST", Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				f.inventoryRepo.
					On("GetAggregate", mock.Anything, "tenant-1", []string{"SKU-GHOST"}, "").
					Return(map[string]*model.AggregateStock{}, nil).
					Once()
			},
			want: &model.AvailabilityResponse{
				Results: []model.AvailabilityResult{
					{
						SkuID:        "SKU-GHOST",
						Known:        false,
						Requested:    5,
						Sufficient:   false,
						WarningLevel: constant.WarningLevelCritical,
						Shortfall:    5,
						Locations:    []string{},
					},
				},
				Summary: model.AvailabilitySummary{
					TotalItems:        1,
					InsufficientItems: 1,
					RequiresApproval:  true,
				},
			},
		},
		{
			name: "success: mixed lines produce aggregate summary",
			fields: fields{
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				tenantID: "tenant-1",
				req: &model.AvailabilityRequest{
					Items: []model.AvailabilityItemRequest{
						{SkuID: "SKU-IPA-12", Quantity: 10},
						{SkuID: "SKU-LAGER-24", Quantity: 40},
					},
					Location: "main",
				},
			},
			mockCall: func(f fields) {
				f.inventoryRepo.
					On("GetAggregate", mock.Anything, "tenant-1", []string{"SKU-IPA-12", "SKU-LAGER-24"}, "main").
					Return(map[string]*model.AggregateStock{
						"SKU-IPA-12":   {OnHand: 100, Allocated: 30, Locations: []string{"main"}},
						"SKU-LAGER-24": {OnHand: 25, Allocated: 0, Locations: []string{"main"}},
					}, nil).
					Once()
			},
			want: &model.AvailabilityResponse{
				Results: []model.AvailabilityResult{
					{
						SkuID:        "SKU-IPA-12",
						Known:        true,
						OnHand:       100,
						Allocated:    30,
						Available:    70,
						Requested:    10,
						Sufficient:   true,
						WarningLevel: constant.WarningLevelNone,
						Locations:    []string{"main"},
					},
					{
						SkuID:        "SKU-LAGER-24",
						Known:        true,
						OnHand:       25,
						Allocated:    0,
						Available:    25,
						Requested:    40,
						Sufficient:   false,
						WarningLevel: constant.WarningLevelCritical,
						Shortfall:    15,
						Locations:    []string{"main"},
					},
				},
				Summary: model.AvailabilitySummary{
					TotalItems:        2,
					SufficientItems:   1,
					InsufficientItems: 1,
					RequiresApproval:  true,
				},
			},
		},
		{
			name: "error: empty items",
			fields: fields{
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				tenantID: "tenant-1",
				req:      &model.AvailabilityRequest{},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: non-positive quantity rejected before any read",
			fields: fields{
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				tenantID: "tenant-1",
				req: &model.AvailabilityRequest{
					Items: []model.AvailabilityItemRequest{
						{SkuID: "SKU-IPA-12", Quantity: 0},
					},
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: repository failure",
			fields: fields{
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
			},
			args: args{
				ctx:      context.Background(),
				tenantID: "tenant-1",
				req: &model.AvailabilityRequest{
					Items: []model.AvailabilityItemRequest{
						{SkuID: "SKU-IPA-12", Quantity: 5},
					},
				},
			},
			mockCall: func(f fields) {
				f.inventoryRepo.
					On("GetAggregate", mock.Anything, "tenant-1", []string{"SKU-IPA-12"}, "").
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appavailability.NewAvailabilityApp(tt.fields.inventoryRepo)

			got, err := app.Check(tt.args.ctx, tt.args.tenantID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Check() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
