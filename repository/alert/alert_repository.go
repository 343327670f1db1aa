package alert

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anhlog/wms/model"
	"github.com/jmoiron/sqlx"
)

type AlertRepository interface {
	Insert(ctx context.Context, a *model.Alert) (uint64, error)
	Acknowledge(ctx context.Context, alertID, actorID uint64) error
	List(ctx context.Context, filter *model.AlertFilter) ([]model.Alert, int, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewAlertRepository(conn *sqlx.DB) AlertRepository {
	return &SQL{conn: conn}
}

const alertColumns = "id, type, warehouse_id, product_id, receipt_id, message, acknowledged, acknowledged_by, created_at"

func (r *SQL) Insert(ctx context.Context, a *model.Alert) (uint64, error) {
	var id uint64
	q := `INSERT INTO alert (type, warehouse_id, product_id, receipt_id, message, acknowledged, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW()) RETURNING id`
	if err := r.conn.QueryRowxContext(ctx, q, a.Type, a.WarehouseID, a.ProductID, a.ReceiptID, a.Message).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) Acknowledge(ctx context.Context, alertID, actorID uint64) error {
	q := "UPDATE alert SET acknowledged = TRUE, acknowledged_by = $2 WHERE id = $1 AND acknowledged = FALSE"
	res, err := r.conn.ExecContext(ctx, q, alertID, actorID)
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

func (r *SQL) List(ctx context.Context, filter *model.AlertFilter) ([]model.Alert, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.WarehouseID != 0 {
		args = append(args, filter.WarehouseID)
		where += fmt.Sprintf(" AND warehouse_id = $%d", len(args))
	}
	if filter.Acknowledged != nil {
		args = append(args, *filter.Acknowledged)
		where += fmt.Sprintf(" AND acknowledged = $%d", len(args))
	}

	var total int
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM alert "+where, args...); err != nil {
		return nil, 0, err
	}

	alerts := make([]model.Alert, 0)
	q := fmt.Sprintf("SELECT %s FROM alert %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		alertColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	if err := r.conn.SelectContext(ctx, &alerts, q, args...); err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}
