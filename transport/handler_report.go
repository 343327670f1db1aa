package transport

import (
	"encoding/json"
	"net/http"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	"github.com/anhlog/wms/utils/errors"
	validatorx "github.com/anhlog/wms/utils/validator"
)

// LowStockReport handler
// @Summary Low stock report
// @Description Products at or below their reorder point for one warehouse
// @Tags Reports
// @Produce json
// @Param warehouse_id query int true "Warehouse ID"
// @Success 200 {object} model.LowStockReport
// @Router /v1/report/low-stock [get]
func (s *RestHandler) LowStockReport(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	warehouseID := queryUint(r, "warehouse_id")
	if warehouseID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReportApp.LowStock(r.Context(), warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DelayedReceiptsReport(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	res, err := s.ReportApp.DelayedReceipts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DivergenceReport(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	warehouseID := queryUint(r, "warehouse_id")
	if warehouseID == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReportApp.Divergences(r.Context(), warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	filter := &model.AlertFilter{
		Type:        constant.AlertType(r.URL.Query().Get("type")),
		WarehouseID: queryUint(r, "warehouse_id"),
		Page:        queryInt(r, "page"),
		PerPage:     queryInt(r, "per_page"),
	}
	if raw := r.URL.Query().Get("acknowledged"); raw != "" {
		acked := raw == "true"
		filter.Acknowledged = &acked
	}

	res, err := s.AlertApp.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) AcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AlertApp.Acknowledge(r.Context(), id, actorID(r)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// RaiseAlert handler, internal only. The alert consumer posts findings here.
func (s *RestHandler) RaiseAlert(w http.ResponseWriter, r *http.Request) {
	var req model.RaiseAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AlertApp.Raise(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
