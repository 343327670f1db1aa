package product

import (
	"context"
	"database/sql"

	"github.com/anhlog/wms/model"
	"github.com/jmoiron/sqlx"
)

type ProductRepository interface {
	Insert(ctx context.Context, p *model.Product) (uint64, error)
	GetByID(ctx context.Context, productID uint64) (*model.Product, error)
	GetBySKU(ctx context.Context, customerID uint64, sku string) (*model.Product, error)
	List(ctx context.Context, customerID uint64, page, perPage int) ([]model.Product, int, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const productColumns = "id, customer_id, brand_id, sku, name, reorder_point, unit_cost, created_at"

func (r *SQL) Insert(ctx context.Context, p *model.Product) (uint64, error) {
	var id uint64
	q := `INSERT INTO product (customer_id, brand_id, sku, name, reorder_point, unit_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id`
	if err := r.conn.QueryRowxContext(ctx, q, p.CustomerID, p.BrandID, p.SKU, p.Name, p.ReorderPoint, p.UnitCost).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) GetByID(ctx context.Context, productID uint64) (*model.Product, error) {
	var p model.Product
	q := "SELECT " + productColumns + " FROM product WHERE id = $1"
	if err := r.conn.GetContext(ctx, &p, q, productID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQL) GetBySKU(ctx context.Context, customerID uint64, sku string) (*model.Product, error) {
	var p model.Product
	q := "SELECT " + productColumns + " FROM product WHERE customer_id = $1 AND sku = $2"
	if err := r.conn.GetContext(ctx, &p, q, customerID, sku); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQL) List(ctx context.Context, customerID uint64, page, perPage int) ([]model.Product, int, error) {
	var total int
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM product WHERE customer_id = $1", customerID); err != nil {
		return nil, 0, err
	}

	products := make([]model.Product, 0)
	q := "SELECT " + productColumns + " FROM product WHERE customer_id = $1 ORDER BY sku LIMIT $2 OFFSET $3"
	if err := r.conn.SelectContext(ctx, &products, q, customerID, perPage, (page-1)*perPage); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
