package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	orderrepo "github.com/anhlog/wms/repository/order"
	"github.com/anhlog/wms/thirdparty/rabbitmq"
	"github.com/anhlog/wms/utils/errors"
	"github.com/anhlog/wms/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.Order, error)
	ListOrders(ctx context.Context, filter *model.OrderFilter) (*model.OrderListResponse, error)
	// UpdateStatus applies one transition of the order status state machine.
	// Re-asserting the current status is accepted and does nothing.
	UpdateStatus(ctx context.Context, orderID uint64, next constant.OrderStatus) error
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
	publisher *rabbitmq.Publisher
}

func NewOrderApp(orderRepo orderrepo.OrderRepository, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo, publisher: publisher}
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	order := &model.Order{
		CustomerID:  req.CustomerID,
		WarehouseID: req.WarehouseID,
		OrderNo:     req.OrderNo,
		Status:      constant.OrderStatusCreated,
	}

	id, err := s.orderRepo.InsertOrder(ctx, order)
	if err != nil {
		logger.Error("[CreateOrder] insert order failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	order.ID = id
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	return order, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return order, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, filter *model.OrderFilter) (*model.OrderListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}

	items, total, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		logger.Error("[ListOrders] list orders failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *orderAppImpl) UpdateStatus(ctx context.Context, orderID uint64, next constant.OrderStatus) error {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("[UpdateStatus] get order failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if order.Status == next {
		return nil
	}
	if !constant.CanTransitionOrderStatus(order.Status, next) {
		logger.Info("[UpdateStatus] transition rejected",
			zap.Uint64("order_id", orderID),
			zap.String("from", string(order.Status)),
			zap.String("to", string(next)),
		)
		return errors.SetCustomError(constant.ErrInvalidOrderTransition)
	}

	// Guarded update: a concurrent transition moves the order first and this
	// one fails instead of overwriting it.
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, order.Status, next); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrInvalidOrderTransition)
		}
		logger.Error("[UpdateStatus] update status failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.OrderStatusMessage{
			OrderID:    orderID,
			CustomerID: order.CustomerID,
			From:       order.Status,
			To:         next,
			OccurredAt: time.Now(),
		}
		if err := s.publisher.PublishOrderStatus(msg); err != nil {
			logger.Error("[UpdateStatus] publish order status", zap.String("error", err.Error()))
		}
	}

	return nil
}
