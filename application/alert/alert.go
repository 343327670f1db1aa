package alert

import (
	"context"
	"database/sql"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	alertrepo "github.com/anhlog/wms/repository/alert"
	"github.com/anhlog/wms/utils/errors"
	"github.com/anhlog/wms/utils/logger"
	"go.uber.org/zap"
)

type AlertApp interface {
	Raise(ctx context.Context, req *model.RaiseAlertRequest) (*model.Alert, error)
	List(ctx context.Context, filter *model.AlertFilter) (*model.AlertListResponse, error)
	Acknowledge(ctx context.Context, alertID, actorID uint64) error
}

type alertAppImpl struct {
	alertRepo alertrepo.AlertRepository
}

func NewAlertApp(alertRepo alertrepo.AlertRepository) AlertApp {
	return &alertAppImpl{alertRepo: alertRepo}
}

func (s *alertAppImpl) Raise(ctx context.Context, req *model.RaiseAlertRequest) (*model.Alert, error) {
	a := &model.Alert{
		Type:        req.Type,
		WarehouseID: req.WarehouseID,
		ProductID:   req.ProductID,
		ReceiptID:   req.ReceiptID,
		Message:     req.Message,
	}

	id, err := s.alertRepo.Insert(ctx, a)
	if err != nil {
		logger.Error("[Raise] insert alert failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	a.ID = id
	return a, nil
}

func (s *alertAppImpl) List(ctx context.Context, filter *model.AlertFilter) (*model.AlertListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}

	items, total, err := s.alertRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] list alerts failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AlertListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *alertAppImpl) Acknowledge(ctx context.Context, alertID, actorID uint64) error {
	if err := s.alertRepo.Acknowledge(ctx, alertID, actorID); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[Acknowledge] update failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
