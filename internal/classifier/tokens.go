package classifier

import (
	"strings"
	"unicode"

	"fjacquet/expense-ml/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents removes combining marks so "café" and "cafe" vectorize
// identically. A fresh transformer chain is built per call; the chain is
// stateful and must not be shared between goroutines.
func stripAccents(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, s)
	if err != nil {
		return s
	}
	return out
}

// tokenize converts a title (and optional amount) into the feature tokens
// fed to the classifier: accent-insensitive lower-cased words plus word
// bigrams and trigrams, and, when enabled, a discretized amount bucket.
func tokenize(title string, amount *decimal.Decimal, amountFeatures bool) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, stripAccents(title))

	words := strings.Fields(cleaned)

	tokens := make([]string, 0, len(words)*3)
	tokens = append(tokens, words...)
	for i := 0; i+1 < len(words); i++ {
		tokens = append(tokens, words[i]+"_"+words[i+1])
	}
	for i := 0; i+2 < len(words); i++ {
		tokens = append(tokens, words[i]+"_"+words[i+1]+"_"+words[i+2])
	}

	if amountFeatures {
		if bucket := models.AmountBucket(amount); bucket != "" {
			tokens = append(tokens, "amount_"+bucket)
		}
	}

	return tokens
}
