package transport

import (
	"encoding/json"
	"net/http"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	utilsContext "github.com/anhlog/wms/utils/context"
	"github.com/anhlog/wms/utils/errors"
	validatorx "github.com/anhlog/wms/utils/validator"
)

// CreateWarehouse handler
// @Summary Create warehouse
// @Description Create a warehouse with its staging location
// @Tags Warehouses
// @Accept json
// @Produce json
// @Param request body model.CreateWarehouseRequest true "Create Warehouse Request"
// @Success 200 {object} model.Warehouse
// @Router /v1/warehouse [post]
func (s *RestHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireAdmin(w, r) {
		return
	}

	var req model.CreateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.CreateWarehouse(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	res, err := s.WarehouseApp.ListWarehouses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.GetWarehouse(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ActivateWarehouse(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.WarehouseApp.ActivateWarehouse(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// DeactivateWarehouse handler
// @Summary Deactivate warehouse
// @Description Deactivate a warehouse; refused with 409 while it still holds stock
// @Tags Warehouses
// @Produce json
// @Param id path int true "Warehouse ID"
// @Failure 409 {object} errors.CustomError
// @Router /v1/warehouse/{id}/deactivate [post]
func (s *RestHandler) DeactivateWarehouse(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.WarehouseApp.DeactivateWarehouse(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.CreateLocation(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.WarehouseApp.ListLocations(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateCustomer handler
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body model.CreateCustomerRequest true "Create Customer Request"
// @Success 200 {object} model.Customer
// @Failure 409 {object} errors.CustomError
// @Router /v1/customer [post]
func (s *RestHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req model.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CustomerApp.CreateCustomer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	res, err := s.CustomerApp.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if customerID, ok := utilsContext.GetCustomerID(ctx); ok && customerID != id {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	res, err := s.CustomerApp.GetCustomer(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if customerID, ok := utilsContext.GetCustomerID(ctx); ok && customerID != id {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	var req model.CreateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CustomerApp.CreateBrand(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if customerID, ok := utilsContext.GetCustomerID(ctx); ok && customerID != id {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	res, err := s.CustomerApp.ListBrands(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Create Product Request"
// @Success 200 {object} model.Product
// @Failure 409 {object} errors.CustomError
// @Router /v1/product [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if customerID, ok := utilsContext.GetCustomerID(ctx); ok && customerID != req.CustomerID {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	res, err := s.ProductApp.CreateProduct(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.GetProduct(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	if customerID, ok := utilsContext.GetCustomerID(ctx); ok && customerID != res.CustomerID {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID := queryUint(r, "customer_id")
	if tenantID, ok := utilsContext.GetCustomerID(ctx); ok {
		customerID = tenantID
	}

	res, err := s.ProductApp.ListProducts(ctx, customerID, queryInt(r, "page"), queryInt(r, "per_page"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
