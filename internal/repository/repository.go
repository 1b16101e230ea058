package repository

import (
	"context"

	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repositories need. Accepting the
// interface lets callers pass a pool, a single connection, or a transaction.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ProductRepository defines the interface for product data access operations.
// Every operation is one autocommitted statement with bound parameters.
type ProductRepository interface {
	// FindAll returns every product, newest first.
	FindAll(ctx context.Context) ([]model.Product, error)

	// FindByID returns the product with the given id, or nil when none exists.
	FindByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a product and returns the id assigned by the store.
	Create(ctx context.Context, input model.ProductInput) (int64, error)

	// Update overwrites name, price and description and returns the number
	// of rows affected (0 or 1).
	Update(ctx context.Context, id int64, input model.ProductInput) (int64, error)

	// Delete removes a product and returns the number of rows affected (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
}
