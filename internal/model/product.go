package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalogue entry stored in the products table.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description *string         `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// DescriptionText returns the description or an empty string when it is NULL.
func (p Product) DescriptionText() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

// ProductInput carries the mutable fields of a product. Create and update
// both write every field; there is no partial update.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description *string
}
