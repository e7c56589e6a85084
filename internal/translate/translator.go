// Package translate provides the external machine-translation capability
// consumed by the normalizer. Translation is best effort: failures are
// returned as errors and the caller decides the fallback.
package translate

import "context"

// Result holds a translated text together with the detected source language
// (an ISO 639-1 code such as "hi" or "en").
type Result struct {
	Text           string
	SourceLanguage string
}

// Translator translates free text to the configured target language.
// Implementations must be safe for concurrent use.
type Translator interface {
	Translate(ctx context.Context, text string) (Result, error)
}
