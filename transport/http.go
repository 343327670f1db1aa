package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	alertapp "github.com/anhlog/wms/application/alert"
	customerapp "github.com/anhlog/wms/application/customer"
	inboundapp "github.com/anhlog/wms/application/inbound"
	inventoryapp "github.com/anhlog/wms/application/inventory"
	orderapp "github.com/anhlog/wms/application/order"
	productapp "github.com/anhlog/wms/application/product"
	putawayapp "github.com/anhlog/wms/application/putaway"
	reportapp "github.com/anhlog/wms/application/report"
	warehouseapp "github.com/anhlog/wms/application/warehouse"
	"github.com/anhlog/wms/constant"
	utilsContext "github.com/anhlog/wms/utils/context"
	"github.com/anhlog/wms/utils/errors"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	OrderApp     orderapp.OrderApp
	InventoryApp inventoryapp.InventoryApp
	PutawayApp   putawayapp.PutawayApp
	InboundApp   inboundapp.InboundApp
	WarehouseApp warehouseapp.WarehouseApp
	CustomerApp  customerapp.CustomerApp
	ProductApp   productapp.ProductApp
	ReportApp    reportapp.ReportApp
	AlertApp     alertapp.AlertApp
}

func NewTransport(rh *RestHandler, jwtSecret, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Orders
	router.HandleFunc("/v1/order", rh.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/v1/order/{id}", rh.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/v1/order/{id}/status", rh.UpdateOrderStatus).Methods(http.MethodPatch)
	router.HandleFunc("/v1/orders", rh.ListOrders).Methods(http.MethodGet)

	// Inbound receiving
	router.HandleFunc("/v1/inbound", rh.CreateReceipt).Methods(http.MethodPost)
	router.HandleFunc("/v1/inbound/{id}", rh.GetReceipt).Methods(http.MethodGet)
	router.HandleFunc("/v1/inbound/{id}/receive", rh.ReceiveReceipt).Methods(http.MethodPost)

	// Putaway
	router.HandleFunc("/v1/putaway/tasks", rh.ListPutawayTasks).Methods(http.MethodGet)
	router.HandleFunc("/v1/putaway/task/{id}", rh.GetPutawayTask).Methods(http.MethodGet)
	router.HandleFunc("/v1/putaway/task/{id}/assign", rh.AssignPutawayLocation).Methods(http.MethodPost)
	router.HandleFunc("/v1/putaway/task/{id}/complete", rh.CompletePutaway).Methods(http.MethodPost)

	// Inventory
	router.HandleFunc("/v1/inventory/movement", rh.RecordMovement).Methods(http.MethodPost)
	router.HandleFunc("/v1/inventory/ledger", rh.ListLedger).Methods(http.MethodGet)

	// Warehouses
	router.HandleFunc("/v1/warehouse", rh.CreateWarehouse).Methods(http.MethodPost)
	router.HandleFunc("/v1/warehouses", rh.ListWarehouses).Methods(http.MethodGet)
	router.HandleFunc("/v1/warehouse/{id}", rh.GetWarehouse).Methods(http.MethodGet)
	router.HandleFunc("/v1/warehouse/{id}/activate", rh.ActivateWarehouse).Methods(http.MethodPost)
	router.HandleFunc("/v1/warehouse/{id}/deactivate", rh.DeactivateWarehouse).Methods(http.MethodPost)
	router.HandleFunc("/v1/warehouse/{id}/location", rh.CreateLocation).Methods(http.MethodPost)
	router.HandleFunc("/v1/warehouse/{id}/locations", rh.ListLocations).Methods(http.MethodGet)
	router.HandleFunc("/v1/warehouse/{id}/stock", rh.ListStockLevels).Methods(http.MethodGet)

	// Customers and brands
	router.HandleFunc("/v1/customer", rh.CreateCustomer).Methods(http.MethodPost)
	router.HandleFunc("/v1/customers", rh.ListCustomers).Methods(http.MethodGet)
	router.HandleFunc("/v1/customer/{id}", rh.GetCustomer).Methods(http.MethodGet)
	router.HandleFunc("/v1/customer/{id}/brand", rh.CreateBrand).Methods(http.MethodPost)
	router.HandleFunc("/v1/customer/{id}/brands", rh.ListBrands).Methods(http.MethodGet)

	// Products
	router.HandleFunc("/v1/product", rh.CreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/v1/product/{id}", rh.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/v1/products", rh.ListProducts).Methods(http.MethodGet)

	// Reports
	router.HandleFunc("/v1/report/low-stock", rh.LowStockReport).Methods(http.MethodGet)
	router.HandleFunc("/v1/report/delayed-receipts", rh.DelayedReceiptsReport).Methods(http.MethodGet)
	router.HandleFunc("/v1/report/divergence", rh.DivergenceReport).Methods(http.MethodGet)

	// Alerts
	router.HandleFunc("/v1/alerts", rh.ListAlerts).Methods(http.MethodGet)
	router.HandleFunc("/v1/alert/{id}/ack", rh.AcknowledgeAlert).Methods(http.MethodPost)

	// Internal routes (service key, no JWT)
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/alert", rh.RaiseAlert).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(jwtSecret))

	return router
}

type responseEnvelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Fields  interface{} `json:"fields,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	switch e := err.(type) {
	case errors.ValidationError:
		w.WriteHeader(e.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(responseEnvelope{
			Code:    e.ErrorCode(),
			Message: "invalid request",
			Fields:  e.Fields,
		})
	case errors.CustomError:
		w.WriteHeader(e.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(responseEnvelope{
			Code:    e.ErrorCode(),
			Message: e.Error(),
		})
	default:
		internal := errors.SetCustomError(constant.ErrInternal)
		w.WriteHeader(internal.ErrorHTTPCode())
		_ = json.NewEncoder(w).Encode(responseEnvelope{
			Code:    internal.ErrorCode(),
			Message: internal.Error(),
		})
	}
}

func pathID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["id"]
	return strconv.ParseUint(raw, 10, 64)
}

func queryUint(r *http.Request, key string) uint64 {
	v, _ := strconv.ParseUint(r.URL.Query().Get(key), 10, 64)
	return v
}

func queryInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(key))
	return v
}

// requireAdmin rejects non-admin callers. Internal routes bypass the JWT
// middleware entirely and never reach this.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	role, ok := utilsContext.GetRole(r.Context())
	if !ok || role != constant.RoleAdmin {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return false
	}
	return true
}

// actorID returns the acting user, zero for internal service calls.
func actorID(r *http.Request) uint64 {
	id, _ := utilsContext.GetActorID(r.Context())
	return id
}
