package models

import "github.com/shopspring/decimal"

// Amount bucket boundaries shared by the classifier's feature construction
// and the rule-of-thumb fallback.
var (
	amountVeryLow = decimal.NewFromInt(100)
	amountLow     = decimal.NewFromInt(500)
	amountMedium  = decimal.NewFromInt(2000)
	amountHigh    = decimal.NewFromInt(10000)
)

// AmountBucket discretizes an amount into one of five labeled ranges.
// It returns an empty string when amount is nil.
func AmountBucket(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	switch {
	case amount.LessThan(amountVeryLow):
		return "very_low"
	case amount.LessThan(amountLow):
		return "low"
	case amount.LessThan(amountMedium):
		return "medium"
	case amount.LessThan(amountHigh):
		return "high"
	default:
		return "very_high"
	}
}

// AmountFallbackCategory maps an amount to a category using the fixed rule
// of thumb applied when no trained model is available. Returns
// CategoryUncategorized when amount is nil.
func AmountFallbackCategory(amount *decimal.Decimal) string {
	if amount == nil {
		return CategoryUncategorized
	}
	switch {
	case amount.LessThan(amountVeryLow):
		return "snacks"
	case amount.LessThan(amountLow):
		return "groceries"
	case amount.LessThan(amountMedium):
		return "dining"
	case amount.LessThan(amountHigh):
		return "clothing"
	default:
		return "rent"
	}
}
