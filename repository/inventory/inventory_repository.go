package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anhlog/wms/model"
	"github.com/jmoiron/sqlx"
)

type InventoryRepository interface {
	// UpsertIncrementTx adds delta to the on-hand quantity of the
	// (warehouse, location, product) record, creating it at delta when absent.
	// Single statement, so concurrent callers can never lose an increment.
	UpsertIncrementTx(ctx context.Context, tx *sqlx.Tx, warehouseID, locationID, productID uint64, delta int64) error
	// DecrementTx subtracts qty from on-hand, refusing to go below zero.
	// Returns sql.ErrNoRows when no record holds enough stock.
	DecrementTx(ctx context.Context, tx *sqlx.Tx, warehouseID, locationID, productID uint64, qty int64) error
	AppendLedgerTx(ctx context.Context, tx *sqlx.Tx, entry *model.LedgerEntry) error
	GetRecord(ctx context.Context, warehouseID, locationID, productID uint64) (*model.InventoryRecord, error)
	ListStockLevels(ctx context.Context, warehouseID uint64) ([]model.StockLevel, error)
	ListLedger(ctx context.Context, filter *model.LedgerFilter) ([]model.LedgerEntry, int, error)
	// ListDivergences compares the balance derived from the ledger against the
	// cached on-hand totals per (warehouse, product).
	ListDivergences(ctx context.Context, warehouseID uint64) ([]model.LedgerDivergence, error)
	ListLowStock(ctx context.Context, warehouseID uint64) ([]model.LowStockItem, error)
	CheckWarehouseStock(ctx context.Context, warehouseID uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

func (r *SQL) UpsertIncrementTx(ctx context.Context, tx *sqlx.Tx, warehouseID, locationID, productID uint64, delta int64) error {
	q := `INSERT INTO inventory_record (warehouse_id, location_id, product_id, on_hand, allocated, updated_at)
		VALUES ($1, $2, $3, $4, 0, NOW())
		ON CONFLICT (warehouse_id, location_id, product_id)
		DO UPDATE SET on_hand = inventory_record.on_hand + EXCLUDED.on_hand, updated_at = NOW()`
	_, err := tx.ExecContext(ctx, q, warehouseID, locationID, productID, delta)
	return err
}

func (r *SQL) DecrementTx(ctx context.Context, tx *sqlx.Tx, warehouseID, locationID, productID uint64, qty int64) error {
	q := `UPDATE inventory_record SET on_hand = on_hand - $4, updated_at = NOW()
		WHERE warehouse_id = $1 AND location_id = $2 AND product_id = $3 AND on_hand >= $4`
	res, err := tx.ExecContext(ctx, q, warehouseID, locationID, productID, qty)
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

func (r *SQL) AppendLedgerTx(ctx context.Context, tx *sqlx.Tx, entry *model.LedgerEntry) error {
	if entry.IdempotencyKey != nil && *entry.IdempotencyKey != "" {
		var id string
		q := `INSERT INTO inventory_ledger (id, customer_id, warehouse_id, product_id, movement_type, direction, quantity, unit_cost, reference_type, reference_id, memo, idempotency_key, actor_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
			ON CONFLICT (customer_id, idempotency_key) DO NOTHING
			RETURNING id`
		err := tx.QueryRowxContext(ctx, q,
			entry.ID, entry.CustomerID, entry.WarehouseID, entry.ProductID, entry.MovementType,
			entry.Direction, entry.Quantity, entry.UnitCost, entry.ReferenceType, entry.ReferenceID,
			entry.Memo, entry.IdempotencyKey, entry.ActorID).Scan(&id)
		// No row back means another entry already claimed the key.
		return err
	}

	q := `INSERT INTO inventory_ledger (id, customer_id, warehouse_id, product_id, movement_type, direction, quantity, unit_cost, reference_type, reference_id, memo, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())`
	_, err := tx.ExecContext(ctx, q,
		entry.ID, entry.CustomerID, entry.WarehouseID, entry.ProductID, entry.MovementType,
		entry.Direction, entry.Quantity, entry.UnitCost, entry.ReferenceType, entry.ReferenceID,
		entry.Memo, entry.ActorID)
	return err
}

func (r *SQL) GetRecord(ctx context.Context, warehouseID, locationID, productID uint64) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	q := `SELECT id, warehouse_id, location_id, product_id, on_hand, allocated, updated_at
		FROM inventory_record WHERE warehouse_id = $1 AND location_id = $2 AND product_id = $3`
	if err := r.conn.GetContext(ctx, &rec, q, warehouseID, locationID, productID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *SQL) ListStockLevels(ctx context.Context, warehouseID uint64) ([]model.StockLevel, error) {
	levels := make([]model.StockLevel, 0)
	q := `SELECT ir.warehouse_id, ir.product_id, p.sku, SUM(ir.on_hand) AS on_hand, SUM(ir.allocated) AS allocated
		FROM inventory_record ir
		JOIN product p ON p.id = ir.product_id
		WHERE ir.warehouse_id = $1
		GROUP BY ir.warehouse_id, ir.product_id, p.sku
		ORDER BY p.sku`
	if err := r.conn.SelectContext(ctx, &levels, q, warehouseID); err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *SQL) ListLedger(ctx context.Context, filter *model.LedgerFilter) ([]model.LedgerEntry, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if filter.CustomerID != 0 {
		args = append(args, filter.CustomerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if filter.WarehouseID != 0 {
		args = append(args, filter.WarehouseID)
		where += fmt.Sprintf(" AND warehouse_id = $%d", len(args))
	}
	if filter.ProductID != 0 {
		args = append(args, filter.ProductID)
		where += fmt.Sprintf(" AND product_id = $%d", len(args))
	}
	if filter.MovementType != "" {
		args = append(args, filter.MovementType)
		where += fmt.Sprintf(" AND movement_type = $%d", len(args))
	}

	var total int
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM inventory_ledger "+where, args...); err != nil {
		return nil, 0, err
	}

	entries := make([]model.LedgerEntry, 0)
	q := fmt.Sprintf(`SELECT id, customer_id, warehouse_id, product_id, movement_type, direction, quantity, unit_cost, reference_type, reference_id, memo, idempotency_key, actor_id, created_at
		FROM inventory_ledger %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	if err := r.conn.SelectContext(ctx, &entries, q, args...); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *SQL) ListDivergences(ctx context.Context, warehouseID uint64) ([]model.LedgerDivergence, error) {
	rows := make([]model.LedgerDivergence, 0)
	q := `SELECT l.warehouse_id, l.product_id,
			SUM(CASE WHEN l.direction = 'IN' THEN l.quantity WHEN l.direction = 'OUT' THEN -l.quantity ELSE 0 END) AS ledger_balance,
			COALESCE(ir.on_hand, 0) AS on_hand
		FROM inventory_ledger l
		LEFT JOIN (
			SELECT warehouse_id, product_id, SUM(on_hand) AS on_hand
			FROM inventory_record GROUP BY warehouse_id, product_id
		) ir ON ir.warehouse_id = l.warehouse_id AND ir.product_id = l.product_id
		WHERE l.warehouse_id = $1
		GROUP BY l.warehouse_id, l.product_id, ir.on_hand
		HAVING SUM(CASE WHEN l.direction = 'IN' THEN l.quantity WHEN l.direction = 'OUT' THEN -l.quantity ELSE 0 END) <> COALESCE(ir.on_hand, 0)`
	if err := r.conn.SelectContext(ctx, &rows, q, warehouseID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQL) ListLowStock(ctx context.Context, warehouseID uint64) ([]model.LowStockItem, error) {
	items := make([]model.LowStockItem, 0)
	q := `SELECT ir.warehouse_id, ir.product_id, p.sku, SUM(ir.on_hand - ir.allocated) AS available, p.reorder_point, p.unit_cost
		FROM inventory_record ir
		JOIN product p ON p.id = ir.product_id
		WHERE ir.warehouse_id = $1
		GROUP BY ir.warehouse_id, ir.product_id, p.sku, p.reorder_point, p.unit_cost
		HAVING SUM(ir.on_hand - ir.allocated) <= p.reorder_point
		ORDER BY p.sku`
	if err := r.conn.SelectContext(ctx, &items, q, warehouseID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) CheckWarehouseStock(ctx context.Context, warehouseID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(on_hand), 0) FROM inventory_record WHERE warehouse_id = $1"
	if err := r.conn.GetContext(ctx, &total, q, warehouseID); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}
