package classifier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTokenize_WordsAndNgrams(t *testing.T) {
	tokens := tokenize("uber trip airport", nil, false)

	assert.Equal(t, []string{
		"uber", "trip", "airport",
		"uber_trip", "trip_airport",
		"uber_trip_airport",
	}, tokens)
}

func TestTokenize_SingleWordHasNoNgrams(t *testing.T) {
	tokens := tokenize("coffee", nil, false)
	assert.Equal(t, []string{"coffee"}, tokens)
}

func TestTokenize_StripsAccentsAndPunctuation(t *testing.T) {
	tokens := tokenize("Café-du-Coin!", nil, false)

	assert.Contains(t, tokens, "cafe")
	assert.Contains(t, tokens, "du")
	assert.Contains(t, tokens, "coin")
	assert.Contains(t, tokens, "cafe_du_coin")
}

func TestTokenize_Lowercases(t *testing.T) {
	tokens := tokenize("UBER Trip", nil, false)
	assert.Contains(t, tokens, "uber")
	assert.Contains(t, tokens, "trip")
	assert.NotContains(t, tokens, "UBER")
}

func TestTokenize_AmountFeature(t *testing.T) {
	amount := decimal.NewFromInt(300)

	tokens := tokenize("coffee", &amount, true)
	assert.Contains(t, tokens, "amount_low")

	tokens = tokenize("coffee", &amount, false)
	assert.NotContains(t, tokens, "amount_low")

	tokens = tokenize("coffee", nil, true)
	for _, tok := range tokens {
		assert.NotContains(t, tok, "amount_")
	}
}

func TestTokenize_EmptyTitle(t *testing.T) {
	assert.Empty(t, tokenize("", nil, false))
	assert.Empty(t, tokenize("!!! ---", nil, false))
}

func TestStripAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"café", "cafe"},
		{"crème brûlée", "creme brulee"},
		{"über", "uber"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, stripAccents(tt.input))
	}
}
