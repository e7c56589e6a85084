package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	result, err := parseResponse("Language: hi\nTranslation: auto rickshaw fare")
	require.NoError(t, err)

	assert.Equal(t, "hi", result.SourceLanguage)
	assert.Equal(t, "auto rickshaw fare", result.Text)
}

func TestParseResponse_ExtraWhitespaceAndCase(t *testing.T) {
	result, err := parseResponse("  Language:  FR  \n\n  Translation:  coffee shop  \n")
	require.NoError(t, err)

	assert.Equal(t, "fr", result.SourceLanguage)
	assert.Equal(t, "coffee shop", result.Text)
}

func TestParseResponse_MissingTranslation(t *testing.T) {
	_, err := parseResponse("Language: en")
	assert.Error(t, err)

	_, err = parseResponse("some unstructured reply")
	assert.Error(t, err)
}

func TestParseResponse_LanguageOptional(t *testing.T) {
	result, err := parseResponse("Translation: metro card recharge")
	require.NoError(t, err)

	assert.Empty(t, result.SourceLanguage)
	assert.Equal(t, "metro card recharge", result.Text)
}

func TestNewGeminiTranslator_Defaults(t *testing.T) {
	tr := NewGeminiTranslator("key", "", "", nil)

	assert.Equal(t, "gemini-2.0-flash", tr.modelName)
	assert.Equal(t, "en", tr.targetLanguage)
}

func TestEnsureClient_NoAPIKey(t *testing.T) {
	tr := NewGeminiTranslator("", "", "", nil)

	_, err := tr.ensureClient(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
