// Package integration exercises the full HTTP stack against a real
// PostgreSQL container.
package integration

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/database/databasetest"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/handler"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/repository"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/router"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/service"
	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/view"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// setupTestServer wires the application exactly as the serve command does,
// on top of a migrated test database.
func setupTestServer(t *testing.T, testDB *databasetest.TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	productService := service.NewProductService(productRepo, logger)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	productHandler := handler.NewProductHandler(productService, renderer, logger)

	return router.New(productHandler, renderer, testDB.Pool, logger)
}

// postForm builds a url-encoded form submission.
func postForm(path string, values url.Values) *http.Request {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// seedProduct inserts a product directly and returns its id.
func seedProduct(t *testing.T, testDB *databasetest.TestDB, name, price string) int64 {
	t.Helper()

	var id int64
	err := testDB.Pool.QueryRow(context.Background(),
		"INSERT INTO products (name, price) VALUES ($1, $2::numeric) RETURNING id",
		name, price,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// latestProductID returns the id of the most recently created product.
func latestProductID(t *testing.T, testDB *databasetest.TestDB) int64 {
	t.Helper()

	var id int64
	err := testDB.Pool.QueryRow(context.Background(),
		"SELECT id FROM products ORDER BY created_at DESC, id DESC LIMIT 1",
	).Scan(&id)
	require.NoError(t, err)
	return id
}
