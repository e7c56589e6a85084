// Package normalizer canonicalizes expense titles before resolution:
// lower-casing, whitespace trimming, and best-effort translation to a
// canonical language. Translation failures never propagate; the local
// normalization is always returned as a fallback.
package normalizer

import (
	"context"
	"strings"
	"time"

	"fjacquet/expense-ml/internal/logging"
	"fjacquet/expense-ml/internal/translate"
)

// DefaultTimeout bounds the wait on the external translation call.
const DefaultTimeout = 5 * time.Second

// NormalizeLocal applies the casing and trim rule shared with the preference
// store: lower-case, surrounding whitespace removed.
func NormalizeLocal(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Normalizer canonicalizes titles, optionally routing them through an
// external translator.
type Normalizer struct {
	translator     translate.Translator
	targetLanguage string
	timeout        time.Duration
	logger         logging.Logger
}

// New creates a Normalizer. translator may be nil, in which case only the
// local casing/trim rule applies.
func New(translator translate.Translator, targetLanguage string, timeout time.Duration, logger logging.Logger) *Normalizer {
	if targetLanguage == "" {
		targetLanguage = "en"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Normalizer{
		translator:     translator,
		targetLanguage: targetLanguage,
		timeout:        timeout,
		logger:         logger,
	}
}

// Normalize returns the canonical form of title and the detected source
// language when translation took place ("" otherwise). Any translator
// failure, including timeout, degrades silently to the local normalization.
func (n *Normalizer) Normalize(ctx context.Context, title string) (string, string) {
	local := NormalizeLocal(title)
	if n.translator == nil || local == "" {
		return local, ""
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	result, err := n.translator.Translate(ctx, local)
	if err != nil {
		n.logger.WithError(err).WithField(logging.FieldTitle, local).
			Debug("Translation failed, using original title")
		return local, ""
	}

	if result.SourceLanguage == "" || result.SourceLanguage == n.targetLanguage {
		return local, result.SourceLanguage
	}

	translated := NormalizeLocal(result.Text)
	if translated == "" {
		return local, result.SourceLanguage
	}

	n.logger.WithFields(
		logging.Field{Key: logging.FieldSourceLanguage, Value: result.SourceLanguage},
	).Debug("Title translated for categorization")

	return translated, result.SourceLanguage
}
