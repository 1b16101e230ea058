package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProductForm(t *testing.T) {
	tests := []struct {
		name          string
		form          url.Values
		expectedPrice string
		expectError   bool
	}{
		{name: "Plain decimal", form: url.Values{"name": {"A"}, "price": {"9.99"}}, expectedPrice: "9.99"},
		{name: "Leading dot", form: url.Values{"name": {"A"}, "price": {".5"}}, expectedPrice: "0.5"},
		{name: "Trailing dot", form: url.Values{"name": {"A"}, "price": {"5."}}, expectedPrice: "5"},
		{name: "Exponent", form: url.Values{"name": {"A"}, "price": {"1e3"}}, expectedPrice: "1000"},
		{name: "Surrounding spaces", form: url.Values{"name": {"A"}, "price": {" 12 "}}, expectedPrice: "12"},
		{name: "Negative", form: url.Values{"name": {"A"}, "price": {"-3.25"}}, expectedPrice: "-3.25"},
		{name: "Missing price", form: url.Values{"name": {"A"}}, expectError: true},
		{name: "Not a number", form: url.Values{"name": {"A"}, "price": {"cheap"}}, expectError: true},
		{name: "Comma separator", form: url.Values{"name": {"A"}, "price": {"1,50"}}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := decodeProductForm(formRequest(http.MethodPost, "/products/create", tt.form))

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "A", input.Name)
			assert.True(t, decimal.RequireFromString(tt.expectedPrice).Equal(input.Price),
				"got price %s", input.Price)
			assert.Nil(t, input.Description)
		})
	}
}
