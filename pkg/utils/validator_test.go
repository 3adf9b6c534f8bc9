package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Price    float64 `json:"price" validate:"gt=0"`
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "not-an-email", Password: "short", Price: 0})

	assert.Equal(t, "Enter a valid email address", errs["email"])
	assert.Equal(t, "Ensure this field has at least 8 characters", errs["password"])
	assert.Equal(t, "Must be greater than 0", errs["price"])
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "a@x.com", Password: "pw12345678", Price: 1})
	assert.Empty(t, errs)
}

type pricedRequest struct {
	Price *float64 `json:"price" validate:"omitempty,gt=0,decimals=2"`
	Stock int      `json:"stock" validate:"gte=0,lte=2147483647"`
}

func TestValidateStruct_DecimalPlaces(t *testing.T) {
	for _, price := range []float64{1, 12.3, 12.34, 99999999.99} {
		p := price
		assert.Empty(t, ValidateStruct(pricedRequest{Price: &p}), "price %v", price)
	}

	for _, price := range []float64{0.001, 0.004, 12.345} {
		p := price
		errs := ValidateStruct(pricedRequest{Price: &p})
		assert.Equal(t, "Ensure that there are no more than 2 decimal places", errs["price"], "price %v", price)
	}
}

func TestValidateStruct_UpperBound(t *testing.T) {
	errs := ValidateStruct(pricedRequest{Stock: 3000000000})
	assert.Equal(t, "Must be less than or equal to 2147483647", errs["stock"])

	assert.Empty(t, ValidateStruct(pricedRequest{Stock: 2147483647}))
}

func TestFormatValidationErrors_SortedByField(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"password": "too short",
		"email":    "bad",
	})
	assert.Equal(t, "email: bad; password: too short", msg)
}
