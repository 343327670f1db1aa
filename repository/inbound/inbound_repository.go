package inbound

import (
	"context"
	"database/sql"
	"time"

	"github.com/anhlog/wms/constant"
	"github.com/anhlog/wms/model"
	"github.com/jmoiron/sqlx"
)

type InboundRepository interface {
	InsertReceiptTx(ctx context.Context, tx *sqlx.Tx, receipt *model.InboundReceipt) (uint64, error)
	InsertLinesTx(ctx context.Context, tx *sqlx.Tx, receiptID uint64, lines []model.ReceiptLineRequest) error
	GetReceiptByID(ctx context.Context, receiptID uint64) (*model.InboundReceipt, error)
	// GetReceiptByIDTx locks the receipt row for the receive flow.
	GetReceiptByIDTx(ctx context.Context, tx *sqlx.Tx, receiptID uint64) (*model.InboundReceipt, error)
	GetLines(ctx context.Context, receiptID uint64) ([]model.ReceiptLine, error)
	MarkReceivedTx(ctx context.Context, tx *sqlx.Tx, receiptID uint64, receivedAt time.Time) error
	ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]model.DelayedReceipt, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInboundRepository(conn *sqlx.DB) InboundRepository {
	return &SQL{conn: conn}
}

const receiptColumns = "id, customer_id, warehouse_id, receipt_no, status, received_at, created_at"

func (r *SQL) InsertReceiptTx(ctx context.Context, tx *sqlx.Tx, receipt *model.InboundReceipt) (uint64, error) {
	var id uint64
	q := `INSERT INTO inbound_receipt (customer_id, warehouse_id, receipt_no, status, created_at)
		VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	if err := tx.QueryRowxContext(ctx, q, receipt.CustomerID, receipt.WarehouseID, receipt.ReceiptNo, receipt.Status).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) InsertLinesTx(ctx context.Context, tx *sqlx.Tx, receiptID uint64, lines []model.ReceiptLineRequest) error {
	q := "INSERT INTO inbound_receipt_line (receipt_id, product_id, quantity, unit_cost) VALUES ($1, $2, $3, $4)"
	for _, line := range lines {
		if _, err := tx.ExecContext(ctx, q, receiptID, line.ProductID, line.Quantity, line.UnitCost); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetReceiptByID(ctx context.Context, receiptID uint64) (*model.InboundReceipt, error) {
	var receipt model.InboundReceipt
	q := "SELECT " + receiptColumns + " FROM inbound_receipt WHERE id = $1"
	if err := r.conn.GetContext(ctx, &receipt, q, receiptID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &receipt, nil
}

func (r *SQL) GetReceiptByIDTx(ctx context.Context, tx *sqlx.Tx, receiptID uint64) (*model.InboundReceipt, error) {
	var receipt model.InboundReceipt
	q := "SELECT " + receiptColumns + " FROM inbound_receipt WHERE id = $1 FOR UPDATE"
	if err := tx.GetContext(ctx, &receipt, q, receiptID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &receipt, nil
}

func (r *SQL) GetLines(ctx context.Context, receiptID uint64) ([]model.ReceiptLine, error) {
	lines := make([]model.ReceiptLine, 0)
	q := "SELECT id, receipt_id, product_id, quantity, unit_cost FROM inbound_receipt_line WHERE receipt_id = $1 ORDER BY id"
	if err := r.conn.SelectContext(ctx, &lines, q, receiptID); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *SQL) MarkReceivedTx(ctx context.Context, tx *sqlx.Tx, receiptID uint64, receivedAt time.Time) error {
	q := "UPDATE inbound_receipt SET status = $2, received_at = $3 WHERE id = $1"
	res, err := tx.ExecContext(ctx, q, receiptID, constant.ReceiptStatusReceived, receivedAt)
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

func (r *SQL) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]model.DelayedReceipt, error) {
	receipts := make([]model.DelayedReceipt, 0)
	q := `SELECT id, customer_id, warehouse_id, receipt_no, created_at
		FROM inbound_receipt WHERE status = $1 AND created_at < $2 ORDER BY created_at`
	if err := r.conn.SelectContext(ctx, &receipts, q, constant.ReceiptStatusOpen, cutoff); err != nil {
		return nil, err
	}
	return receipts, nil
}
