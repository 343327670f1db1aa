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

// CreateReceipt handler
// @Summary Create inbound receipt
// @Description Register an expected delivery with its lines
// @Tags Inbound
// @Accept json
// @Produce json
// @Param request body model.CreateReceiptRequest true "Create Receipt Request"
// @Success 200 {object} model.CreateReceiptResponse
// @Failure 400 {object} errors.ValidationError
// @Router /v1/inbound [post]
func (s *RestHandler) CreateReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateReceiptRequest
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

	res, err := s.InboundApp.CreateReceipt(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InboundApp.GetReceipt(ctx, id)
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

// ReceiveReceipt handler
// @Summary Receive inbound receipt
// @Description Book every line of an OPEN receipt into staging and open putaway tasks
// @Tags Inbound
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} model.ReceiveResponse
// @Failure 409 {object} errors.CustomError
// @Router /v1/inbound/{id}/receive [post]
func (s *RestHandler) ReceiveReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InboundApp.Receive(ctx, id, actorID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
