package transport

import (
	"encoding/json"
	"net/http"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	"github.com/anhlog/wms/utils/errors"
	validatorx "github.com/anhlog/wms/utils/validator"
)

func (s *RestHandler) ListPutawayTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireAdmin(w, r) {
		return
	}

	filter := &model.PutawayFilter{
		WarehouseID: queryUint(r, "warehouse_id"),
		Status:      constant.PutawayStatus(r.URL.Query().Get("status")),
		Page:        queryInt(r, "page"),
		PerPage:     queryInt(r, "per_page"),
	}

	res, err := s.PutawayApp.ListTasks(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetPutawayTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PutawayApp.GetTask(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) AssignPutawayLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AssignLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.PutawayApp.AssignLocation(ctx, id, req.LocationID); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PutawayApp.GetTask(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompletePutaway handler
// @Summary Complete putaway task
// @Description Move task quantity from staging into its final location, atomically
// @Tags Putaway
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body model.CompletePutawayRequest true "Complete Putaway Request"
// @Success 200 {object} model.PutawayTask
// @Failure 409 {object} errors.CustomError
// @Router /v1/putaway/task/{id}/complete [post]
func (s *RestHandler) CompletePutaway(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !requireAdmin(w, r) {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CompletePutawayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.PutawayApp.Complete(ctx, id, &req, actorID(r)); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PutawayApp.GetTask(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
