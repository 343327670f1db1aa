package model

import "time"

// Customer is a tenant of the warehouse: the brand owner whose goods we store.
type Customer struct {
	ID        uint64    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Brand struct {
	ID         uint64    `db:"id" json:"id"`
	CustomerID uint64    `db:"customer_id" json:"customer_id"`
	Name       string    `db:"name" json:"name"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required"`
}

type CustomerFilter struct {
	Email string
	Name  string
}
