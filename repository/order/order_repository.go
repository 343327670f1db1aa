package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	"github.com/jmoiron/sqlx"
)

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *model.Order) (uint64, error)
	GetOrderByID(ctx context.Context, orderID uint64) (*model.Order, error)
	// UpdateOrderStatus moves the order only when it still holds fromStatus,
	// so a concurrent transition loses cleanly instead of overwriting.
	UpdateOrderStatus(ctx context.Context, orderID uint64, fromStatus, toStatus constant.OrderStatus) error
	ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertOrder(ctx context.Context, order *model.Order) (uint64, error) {
	var id uint64
	q := `INSERT INTO "order" (customer_id, warehouse_id, order_no, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW()) RETURNING id`
	err := r.conn.QueryRowxContext(ctx, q, order.CustomerID, order.WarehouseID, order.OrderNo, order.Status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) GetOrderByID(ctx context.Context, orderID uint64) (*model.Order, error) {
	var o model.Order
	q := `SELECT id, customer_id, warehouse_id, order_no, status, created_at, updated_at FROM "order" WHERE id = $1`
	if err := r.conn.GetContext(ctx, &o, q, orderID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *SQL) UpdateOrderStatus(ctx context.Context, orderID uint64, fromStatus, toStatus constant.OrderStatus) error {
	q := `UPDATE "order" SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`
	res, err := r.conn.ExecContext(ctx, q, orderID, fromStatus, toStatus)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if filter.CustomerID != 0 {
		args = append(args, filter.CustomerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	if err := r.conn.GetContext(ctx, &total, `SELECT COUNT(*) FROM "order" `+where, args...); err != nil {
		return nil, 0, err
	}

	orders := make([]model.Order, 0)
	q := fmt.Sprintf(`SELECT id, customer_id, warehouse_id, order_no, status, created_at, updated_at
		FROM "order" %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	if err := r.conn.SelectContext(ctx, &orders, q, args...); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
