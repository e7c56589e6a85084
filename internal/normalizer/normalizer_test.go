package normalizer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fjacquet/expense-ml/internal/logging"
	"fjacquet/expense-ml/internal/normalizer"
	"fjacquet/expense-ml/internal/translate"

	"github.com/stretchr/testify/assert"
)

// fakeTranslator returns a canned result or error and records the last text
// it was asked to translate.
type fakeTranslator struct {
	result   translate.Result
	err      error
	lastText string
	delay    time.Duration
}

func (f *fakeTranslator) Translate(ctx context.Context, text string) (translate.Result, error) {
	f.lastText = text
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return translate.Result{}, ctx.Err()
		}
	}
	return f.result, f.err
}

func TestNormalizeLocal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Uber Trip", "uber trip"},
		{"trims whitespace", "  coffee  ", "coffee"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"already normalized", "metro card", "metro card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizer.NormalizeLocal(tt.input))
		})
	}
}

func TestNormalize_NoTranslator(t *testing.T) {
	n := normalizer.New(nil, "en", 0, &logging.MockLogger{})

	normalized, lang := n.Normalize(context.Background(), "  Uber Trip  ")

	assert.Equal(t, "uber trip", normalized)
	assert.Empty(t, lang)
}

func TestNormalize_EmptyTitleSkipsTranslator(t *testing.T) {
	ft := &fakeTranslator{result: translate.Result{Text: "x", SourceLanguage: "fr"}}
	n := normalizer.New(ft, "en", 0, &logging.MockLogger{})

	normalized, lang := n.Normalize(context.Background(), "   ")

	assert.Empty(t, normalized)
	assert.Empty(t, lang)
	assert.Empty(t, ft.lastText)
}

func TestNormalize_TranslatesForeignTitle(t *testing.T) {
	ft := &fakeTranslator{result: translate.Result{Text: "Coffee Shop", SourceLanguage: "fr"}}
	n := normalizer.New(ft, "en", 0, &logging.MockLogger{})

	normalized, lang := n.Normalize(context.Background(), "Café du Coin")

	assert.Equal(t, "coffee shop", normalized)
	assert.Equal(t, "fr", lang)
	assert.Equal(t, "café du coin", ft.lastText)
}

func TestNormalize_SameLanguageKeepsLocalForm(t *testing.T) {
	ft := &fakeTranslator{result: translate.Result{Text: "something else", SourceLanguage: "en"}}
	n := normalizer.New(ft, "en", 0, &logging.MockLogger{})

	normalized, lang := n.Normalize(context.Background(), "Uber Trip")

	assert.Equal(t, "uber trip", normalized)
	assert.Equal(t, "en", lang)
}

func TestNormalize_TranslatorErrorFallsBack(t *testing.T) {
	ft := &fakeTranslator{err: errors.New("api unavailable")}
	n := normalizer.New(ft, "en", 0, &logging.MockLogger{})

	normalized, lang := n.Normalize(context.Background(), "Uber Trip")

	assert.Equal(t, "uber trip", normalized)
	assert.Empty(t, lang)
}

func TestNormalize_TimeoutFallsBack(t *testing.T) {
	ft := &fakeTranslator{
		result: translate.Result{Text: "too late", SourceLanguage: "fr"},
		delay:  200 * time.Millisecond,
	}
	n := normalizer.New(ft, "en", 10*time.Millisecond, &logging.MockLogger{})

	normalized, lang := n.Normalize(context.Background(), "Uber Trip")

	assert.Equal(t, "uber trip", normalized)
	assert.Empty(t, lang)
}

func TestNormalize_EmptyTranslationFallsBack(t *testing.T) {
	ft := &fakeTranslator{result: translate.Result{Text: "   ", SourceLanguage: "hi"}}
	n := normalizer.New(ft, "en", 0, &logging.MockLogger{})

	normalized, lang := n.Normalize(context.Background(), "Chai Point")

	assert.Equal(t, "chai point", normalized)
	assert.Equal(t, "hi", lang)
}
