package customer

import (
	"context"
	"database/sql"

	"github.com/anhlog/wms/model"
	"github.com/jmoiron/sqlx"
)

type CustomerRepository interface {
	Insert(ctx context.Context, c *model.Customer) (uint64, error)
	GetByID(ctx context.Context, customerID uint64) (*model.Customer, error)
	Get(ctx context.Context, filter *model.CustomerFilter) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	InsertBrand(ctx context.Context, b *model.Brand) (uint64, error)
	ListBrands(ctx context.Context, customerID uint64) ([]model.Brand, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewCustomerRepository(conn *sqlx.DB) CustomerRepository {
	return &SQL{conn: conn}
}

func (r *SQL) Insert(ctx context.Context, c *model.Customer) (uint64, error) {
	var id uint64
	q := "INSERT INTO customer (name, email, created_at) VALUES ($1, $2, NOW()) RETURNING id"
	if err := r.conn.QueryRowxContext(ctx, q, c.Name, c.Email).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) GetByID(ctx context.Context, customerID uint64) (*model.Customer, error) {
	var c model.Customer
	q := "SELECT id, name, email, created_at FROM customer WHERE id = $1"
	if err := r.conn.GetContext(ctx, &c, q, customerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *SQL) Get(ctx context.Context, filter *model.CustomerFilter) (*model.Customer, error) {
	var c model.Customer
	var err error
	switch {
	case filter.Email != "":
		err = r.conn.GetContext(ctx, &c, "SELECT id, name, email, created_at FROM customer WHERE email = $1", filter.Email)
	case filter.Name != "":
		err = r.conn.GetContext(ctx, &c, "SELECT id, name, email, created_at FROM customer WHERE name = $1", filter.Name)
	default:
		return nil, nil
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *SQL) List(ctx context.Context) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	if err := r.conn.SelectContext(ctx, &customers, "SELECT id, name, email, created_at FROM customer ORDER BY name"); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *SQL) InsertBrand(ctx context.Context, b *model.Brand) (uint64, error) {
	var id uint64
	q := "INSERT INTO brand (customer_id, name, created_at) VALUES ($1, $2, NOW()) RETURNING id"
	if err := r.conn.QueryRowxContext(ctx, q, b.CustomerID, b.Name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) ListBrands(ctx context.Context, customerID uint64) ([]model.Brand, error) {
	brands := make([]model.Brand, 0)
	q := "SELECT id, customer_id, name, created_at FROM brand WHERE customer_id = $1 ORDER BY name"
	if err := r.conn.SelectContext(ctx, &brands, q, customerID); err != nil {
		return nil, err
	}
	return brands, nil
}
