package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	availabilityapp "github.com/distromax/inventory-api/application/availability"
	inventoryapp "github.com/distromax/inventory-api/application/inventory"
	reservationapp "github.com/distromax/inventory-api/application/reservation"
	sweeperapp "github.com/distromax/inventory-api/application/sweeper"
	"github.com/distromax/inventory-api/constant"
	"github.com/distromax/inventory-api/model"
	utilsContext "github.com/distromax/inventory-api/utils/context"
	"github.com/distromax/inventory-api/utils/errors"
	validatorx "github.com/distromax/inventory-api/utils/validator"
)

type RestHandler struct {
	AvailabilityApp availabilityapp.AvailabilityApp
	ReservationApp  reservationapp.ReservationApp
	InventoryApp    inventoryapp.InventoryApp
	SweeperApp      sweeperapp.SweeperApp
}

type Deps struct {
	AvailabilityApp availabilityapp.AvailabilityApp
	ReservationApp  reservationapp.ReservationApp
	InventoryApp    inventoryapp.InventoryApp
	SweeperApp      sweeperapp.SweeperApp
	JWTSecret       string
	InternalAPIKey  string
}

func NewTransport(deps Deps) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AvailabilityApp: deps.AvailabilityApp,
		ReservationApp:  deps.ReservationApp,
		InventoryApp:    deps.InventoryApp,
		SweeperApp:      deps.SweeperApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// Tenant-facing routes (JWT)
	router.HandleFunc("/v1/availability/check", rh.CheckAvailability).Methods(http.MethodPost)
	router.HandleFunc("/v1/inventory", rh.GetInventory).Methods(http.MethodGet)

	// Internal operational routes (static service key)
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(deps.InternalAPIKey))
	internal.HandleFunc("/v1/reservations/sweep", rh.SweepReservations).Methods(http.MethodPost)
	internal.HandleFunc("/v1/reservations/commit", rh.CommitReservations).Methods(http.MethodPost)
	internal.HandleFunc("/v1/orders/{orderId}/release", rh.ReleaseReservations).Methods(http.MethodPost)
	internal.HandleFunc("/v1/orders/{orderId}/ship", rh.ShipOrder).Methods(http.MethodPost)
	internal.HandleFunc("/v1/inventory/adjust", rh.AdjustInventory).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(deps.JWTSecret))

	return router
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// CheckAvailability handler
// @Summary Check stock availability
// @Description Classify each requested line as sufficient/insufficient with a warning tier
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body model.AvailabilityRequest true "Availability Request"
// @Success 200 {object} model.AvailabilityResponse
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/availability/check [post]
func (s *RestHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := utilsContext.GetTenantID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AvailabilityApp.Check(ctx, tenantID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetInventory handler
// @Summary Get aggregated ledger rows
// @Description Sum on-hand and allocated per SKU across matching locations
// @Tags Inventory
// @Produce json
// @Param skus query string true "Comma-separated SKU ids"
// @Param location query string false "Location filter"
// @Success 200 {object} map[string]model.AggregateStock
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/inventory [get]
func (s *RestHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenantID, ok := utilsContext.GetTenantID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	skus := strings.Split(r.URL.Query().Get("skus"), ",")
	location := r.URL.Query().Get("location")

	res, err := s.InventoryApp.GetAggregate(ctx, tenantID, skus, location)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SweepReservations handler
// @Summary Run an expiration sweep pass
// @Description Reclaim stale ACTIVE reservations; manual trigger for the scheduled job
// @Tags Reservations
// @Produce json
// @Success 200 {object} model.SweepResult
// @Failure 500 {object} errors.CustomError
// @Router /internal/v1/reservations/sweep [post]
func (s *RestHandler) SweepReservations(w http.ResponseWriter, r *http.Request) {
	res, err := s.SweeperApp.Sweep(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CommitReservations handler
// @Summary Commit reservations for an order
// @Description Atomically increment allocated stock and create ACTIVE reservations
// @Tags Reservations
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant id"
// @Param request body model.CommitReservationRequest true "Commit Request"
// @Success 200 {object} model.CommitReservationResponse
// @Failure 400 {object} errors.CustomError
// @Router /internal/v1/reservations/commit [post]
func (s *RestHandler) CommitReservations(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get("X-Tenant-ID")
	if tenantID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CommitReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReservationApp.Commit(r.Context(), tenantID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReleaseReservations handler
// @Summary Release an order's active reservations
// @Description Explicit release path used by fulfillment and cancellation flows
// @Tags Reservations
// @Produce json
// @Param X-Tenant-ID header string true "Tenant id"
// @Param orderId path string true "Order id"
// @Success 200 {object} model.ReleaseReservationsResponse
// @Failure 400 {object} errors.CustomError
// @Router /internal/v1/orders/{orderId}/release [post]
func (s *RestHandler) ReleaseReservations(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get("X-Tenant-ID")
	orderID := mux.Vars(r)["orderId"]
	if tenantID == "" || orderID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReservationApp.Release(r.Context(), tenantID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ShipOrder handler
// @Summary Ship a submitted order
// @Description Deduct shipped stock from on-hand and allocated, retire the reservations and mark the order fulfilled
// @Tags Reservations
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant id"
// @Param orderId path string true "Order id"
// @Param request body model.ShipOrderRequest true "Ship Request"
// @Success 200 {object} model.ShipOrderResponse
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /internal/v1/orders/{orderId}/ship [post]
func (s *RestHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get("X-Tenant-ID")
	orderID := mux.Vars(r)["orderId"]
	if tenantID == "" || orderID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ShipOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReservationApp.Ship(r.Context(), tenantID, orderID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdjustInventory handler
// @Summary Adjust on-hand stock
// @Description Signed correction for receipts, write-offs and cycle counts
// @Tags Inventory
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant id"
// @Param request body model.AdjustInventoryRequest true "Adjust Request"
// @Success 200 {object} model.AdjustInventoryResponse
// @Failure 400 {object} errors.CustomError
// @Router /internal/v1/inventory/adjust [post]
func (s *RestHandler) AdjustInventory(w http.ResponseWriter, r *http.Request) {
	tenantID := r.Header.Get("X-Tenant-ID")
	if tenantID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AdjustInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.Adjust(r.Context(), tenantID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
