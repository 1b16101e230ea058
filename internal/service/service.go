package service

import (
	"context"

	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/model"
)

// ProductService defines operations for product management.
//
// Absence is reported as model.ErrProductNotFound: for reads when no row
// matches, for writes when zero rows were affected. Any other error is a
// store failure.
type ProductService interface {
	// List retrieves every product, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create stores a new product and returns its ID.
	Create(ctx context.Context, input model.ProductInput) (int64, error)

	// Update overwrites an existing product.
	Update(ctx context.Context, id int64, input model.ProductInput) error

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error
}
