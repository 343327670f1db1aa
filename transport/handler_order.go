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

// CreateOrder handler
// @Summary Create order
// @Description Create a new order in status CREATED
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ValidationError
// @Router /v1/order [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// Partners may only create orders for their own tenant.
	if customerID, ok := utilsContext.GetCustomerID(ctx); ok && customerID != req.CustomerID {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.GetOrder(ctx, id)
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

// UpdateOrderStatus handler
// @Summary Update order status
// @Description Apply one order status transition; illegal transitions return 409
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "Target Status"
// @Success 200 {object} model.Order
// @Failure 409 {object} errors.CustomError
// @Router /v1/order/{id}/status [patch]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if customerID, ok := utilsContext.GetCustomerID(ctx); ok {
		order, err := s.OrderApp.GetOrder(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}
		if order.CustomerID != customerID {
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
			return
		}
	}

	if err := s.OrderApp.UpdateStatus(ctx, id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetOrder(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.OrderFilter{
		CustomerID: queryUint(r, "customer_id"),
		Status:     constant.OrderStatus(r.URL.Query().Get("status")),
		Page:       queryInt(r, "page"),
		PerPage:    queryInt(r, "per_page"),
	}

	// Partner tokens are pinned to their own tenant regardless of the query.
	if customerID, ok := utilsContext.GetCustomerID(ctx); ok {
		filter.CustomerID = customerID
	}

	res, err := s.OrderApp.ListOrders(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
