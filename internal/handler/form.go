package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// productForm mirrors the fields posted by the create and edit forms.
// The price only has to be present and parse as a decimal; anything the
// NUMERIC column accepts (".5", "5.", "1e3") gets through. Name and
// description reach the store as submitted.
type productForm struct {
	Name        string
	Price       string `validate:"required"`
	Description string
}

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// decodeProductForm reads the urlencoded body into a ProductInput.
// An empty description is stored as NULL.
func decodeProductForm(r *http.Request) (model.ProductInput, error) {
	if err := r.ParseForm(); err != nil {
		return model.ProductInput{}, fmt.Errorf("failed to parse form: %w", err)
	}

	form := productForm{
		Name:        r.PostForm.Get("name"),
		Price:       strings.TrimSpace(r.PostForm.Get("price")),
		Description: r.PostForm.Get("description"),
	}

	if err := formValidator.Struct(form); err != nil {
		return model.ProductInput{}, fmt.Errorf("missing price: %w", err)
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		return model.ProductInput{}, fmt.Errorf("invalid price %q: %w", form.Price, err)
	}

	input := model.ProductInput{
		Name:  form.Name,
		Price: price,
	}
	if form.Description != "" {
		input.Description = &form.Description
	}

	return input, nil
}
