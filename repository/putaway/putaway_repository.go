package putaway

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	"github.com/jmoiron/sqlx"
)

type PutawayRepository interface {
	GetTaskByID(ctx context.Context, taskID uint64) (*model.PutawayTask, error)
	GetTaskByIDTx(ctx context.Context, tx *sqlx.Tx, taskID uint64) (*model.PutawayTask, error)
	InsertTaskTx(ctx context.Context, tx *sqlx.Tx, task *model.PutawayTask) (uint64, error)
	AssignLocation(ctx context.Context, taskID, locationID uint64) error
	CompleteTaskTx(ctx context.Context, tx *sqlx.Tx, item *model.CompletePutawayTxItem) error
	ListTasks(ctx context.Context, filter *model.PutawayFilter) ([]model.PutawayTask, int, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewPutawayRepository(conn *sqlx.DB) PutawayRepository {
	return &SQL{conn: conn}
}

const taskColumns = "id, customer_id, warehouse_id, product_id, receipt_id, location_id, status, quantity, processed_by, completed_at, created_at"

func (r *SQL) GetTaskByID(ctx context.Context, taskID uint64) (*model.PutawayTask, error) {
	var task model.PutawayTask
	q := "SELECT " + taskColumns + " FROM putaway_task WHERE id = $1"
	if err := r.conn.GetContext(ctx, &task, q, taskID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// GetTaskByIDTx locks the task row so two completions of the same task
// serialize instead of both passing the status guard.
func (r *SQL) GetTaskByIDTx(ctx context.Context, tx *sqlx.Tx, taskID uint64) (*model.PutawayTask, error) {
	var task model.PutawayTask
	q := "SELECT " + taskColumns + " FROM putaway_task WHERE id = $1 FOR UPDATE"
	if err := tx.GetContext(ctx, &task, q, taskID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *SQL) InsertTaskTx(ctx context.Context, tx *sqlx.Tx, task *model.PutawayTask) (uint64, error) {
	var id uint64
	q := `INSERT INTO putaway_task (customer_id, warehouse_id, product_id, receipt_id, status, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id`
	err := tx.QueryRowxContext(ctx, q, task.CustomerID, task.WarehouseID, task.ProductID, task.ReceiptID, task.Status, task.Quantity).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) AssignLocation(ctx context.Context, taskID, locationID uint64) error {
	q := `UPDATE putaway_task SET location_id = $2, status = $3 WHERE id = $1 AND status <> $4`
	res, err := r.conn.ExecContext(ctx, q, taskID, locationID, constant.PutawayStatusAssigned, constant.PutawayStatusCompleted)
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

func (r *SQL) CompleteTaskTx(ctx context.Context, tx *sqlx.Tx, item *model.CompletePutawayTxItem) error {
	q := `UPDATE putaway_task
		SET status = $2, quantity = $3, location_id = $4, processed_by = $5, completed_at = $6
		WHERE id = $1`
	res, err := tx.ExecContext(ctx, q, item.TaskID, constant.PutawayStatusCompleted, item.Quantity, item.LocationID, item.ProcessedBy, item.CompletedAt)
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

func (r *SQL) ListTasks(ctx context.Context, filter *model.PutawayFilter) ([]model.PutawayTask, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if filter.WarehouseID != 0 {
		args = append(args, filter.WarehouseID)
		where += fmt.Sprintf(" AND warehouse_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM putaway_task "+where, args...); err != nil {
		return nil, 0, err
	}

	tasks := make([]model.PutawayTask, 0)
	q := fmt.Sprintf("SELECT %s FROM putaway_task %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		taskColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	if err := r.conn.SelectContext(ctx, &tasks, q, args...); err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}
