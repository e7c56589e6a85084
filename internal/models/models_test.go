package models_test

import (
	"errors"
	"fmt"
	"testing"

	"fjacquet/expense-ml/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amt(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestAmountBucket(t *testing.T) {
	tests := []struct {
		name     string
		amount   *decimal.Decimal
		expected string
	}{
		{"nil amount", nil, ""},
		{"zero", amt("0"), "very_low"},
		{"just below very_low boundary", amt("99.99"), "very_low"},
		{"very_low boundary", amt("100"), "low"},
		{"low range", amt("499.99"), "low"},
		{"low boundary", amt("500"), "medium"},
		{"medium range", amt("1999.99"), "medium"},
		{"medium boundary", amt("2000"), "high"},
		{"high range", amt("9999.99"), "high"},
		{"high boundary", amt("10000"), "very_high"},
		{"large amount", amt("123456"), "very_high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, models.AmountBucket(tt.amount))
		})
	}
}

func TestAmountFallbackCategory(t *testing.T) {
	tests := []struct {
		name     string
		amount   *decimal.Decimal
		expected string
	}{
		{"nil amount", nil, models.CategoryUncategorized},
		{"small amount", amt("50"), "snacks"},
		{"boundary to groceries", amt("100"), "groceries"},
		{"mid groceries", amt("300"), "groceries"},
		{"boundary to dining", amt("500"), "dining"},
		{"mid dining", amt("1500"), "dining"},
		{"boundary to clothing", amt("2000"), "clothing"},
		{"mid clothing", amt("5000"), "clothing"},
		{"boundary to rent", amt("10000"), "rent"},
		{"large amount", amt("50000"), "rent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, models.AmountFallbackCategory(tt.amount))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := models.NewValidationError("at least %d examples required, got %d", 10, 3)

	assert.Error(t, err)
	assert.Equal(t, "validation: at least 10 examples required, got 3", err.Error())
	assert.True(t, models.IsValidationError(err))
}

func TestIsValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("training failed: %w", models.NewValidationError("title must not be empty"))
	assert.True(t, models.IsValidationError(err))
}

func TestIsValidationError_OtherError(t *testing.T) {
	assert.False(t, models.IsValidationError(errors.New("disk full")))
	assert.False(t, models.IsValidationError(nil))
}
