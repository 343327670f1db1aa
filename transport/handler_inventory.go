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

// RecordMovement handler
// @Summary Record inventory movement
// @Description Validate and append one ledger movement, adjusting stock in the same transaction
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.MovementRequest true "Movement Request"
// @Success 200 {object} model.LedgerEntry
// @Failure 400 {object} errors.ValidationError
// @Failure 409 {object} errors.CustomError
// @Router /v1/inventory/movement [post]
func (s *RestHandler) RecordMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.MovementRequest
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

	res, err := s.InventoryApp.RecordMovement(ctx, actorID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListLedger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.LedgerFilter{
		CustomerID:   queryUint(r, "customer_id"),
		WarehouseID:  queryUint(r, "warehouse_id"),
		ProductID:    queryUint(r, "product_id"),
		MovementType: constant.MovementType(r.URL.Query().Get("movement_type")),
		Page:         queryInt(r, "page"),
		PerPage:      queryInt(r, "per_page"),
	}

	if customerID, ok := utilsContext.GetCustomerID(ctx); ok {
		filter.CustomerID = customerID
	}

	res, err := s.InventoryApp.ListLedger(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListStockLevels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.ListStockLevels(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
