package translate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"fjacquet/expense-ml/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTranslator implements Translator using the Google Gemini API.
type GeminiTranslator struct {
	apiKey         string
	modelName      string
	targetLanguage string
	logger         logging.Logger

	mu     sync.Mutex
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiTranslator creates a GeminiTranslator. The underlying API client
// is created lazily on first use.
func NewGeminiTranslator(apiKey, modelName, targetLanguage string, logger logging.Logger) *GeminiTranslator {
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	if targetLanguage == "" {
		targetLanguage = "en"
	}
	return &GeminiTranslator{
		apiKey:         apiKey,
		modelName:      modelName,
		targetLanguage: targetLanguage,
		logger:         logger,
	}
}

// ensureClient ensures the Gemini client is initialized
func (t *GeminiTranslator) ensureClient(ctx context.Context) (*genai.GenerativeModel, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.model != nil {
		return t.model, nil
	}

	if t.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(t.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	t.client = client
	t.model = client.GenerativeModel(t.modelName)
	return t.model, nil
}

// Translate detects the language of text and translates it to the target
// language in a single model call.
func (t *GeminiTranslator) Translate(ctx context.Context, text string) (Result, error) {
	model, err := t.ensureClient(ctx)
	if err != nil {
		return Result{}, err
	}

	prompt := fmt.Sprintf(`Detect the language of the following expense description and translate it to %s.

Description: %s

Respond in exactly this format:
Language: [ISO 639-1 code of the source language]
Translation: [the description translated to %s]`,
		t.targetLanguage, text, t.targetLanguage)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Result{}, fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return Result{}, fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	result, err := parseResponse(responseText)
	if err != nil {
		return Result{}, err
	}

	t.logger.WithFields(
		logging.Field{Key: logging.FieldSourceLanguage, Value: result.SourceLanguage},
	).Debug("Translated expense description")

	return result, nil
}

// Close releases the underlying API client.
func (t *GeminiTranslator) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.client == nil {
		return nil
	}
	err := t.client.Close()
	t.client = nil
	t.model = nil
	return err
}

// parseResponse extracts the language code and translation from the model's
// structured reply.
func parseResponse(response string) (Result, error) {
	var result Result
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "Language:"); ok {
			result.SourceLanguage = strings.ToLower(strings.TrimSpace(after))
		} else if after, ok := strings.CutPrefix(line, "Translation:"); ok {
			result.Text = strings.TrimSpace(after)
		}
	}

	if result.Text == "" {
		return Result{}, fmt.Errorf("no translation in Gemini response")
	}
	return result, nil
}
