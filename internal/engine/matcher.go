package engine

import (
	"strings"
	"unicode/utf8"

	"fjacquet/expense-ml/internal/models"

	"github.com/pmezard/go-difflib/difflib"
)

// minFuzzyRatio is the minimum acceptable per-word similarity. It gates
// candidate pairs and is distinct from the running best score, which merely
// starts at the same value.
const minFuzzyRatio = 0.75

// matchExact finds the first catalog entry whose keyword equals the title or
// appears in it as a whole space-delimited word or phrase. Padding both
// sides with boundary spaces keeps "bus" from matching inside "business".
func matchExact(title string, entries []models.KeywordEntry) (models.KeywordEntry, bool) {
	padded := " " + title + " "
	for _, entry := range entries {
		if entry.Keyword == title || strings.Contains(padded, " "+entry.Keyword+" ") {
			return entry, true
		}
	}
	return models.KeywordEntry{}, false
}

// fuzzyMatch describes the best approximate keyword match for a title.
type fuzzyMatch struct {
	entry models.KeywordEntry
	word  string  // the keyword word that matched
	ratio float64 // winning similarity ratio
	score float64 // composite score
}

// matchFuzzy scores approximate matches between title words and keyword
// words, tolerating typos. Acceptance requires strict improvement over the
// running best, so the first-seen pair among ties wins and catalog order
// stays decisive.
func matchFuzzy(title string, entries []models.KeywordEntry) (fuzzyMatch, bool) {
	titleWords := strings.Fields(title)

	var best fuzzyMatch
	bestScore := minFuzzyRatio
	found := false

	for _, entry := range entries {
		for _, keywordWord := range strings.Fields(entry.Keyword) {
			kwLen := utf8.RuneCountInString(keywordWord)
			for _, titleWord := range titleWords {
				twLen := utf8.RuneCountInString(titleWord)
				if twLen < 3 {
					continue // short tokens false-positive too easily
				}

				lenDiff := twLen - kwLen
				if lenDiff < 0 {
					lenDiff = -lenDiff
				}
				if kwLen <= 4 {
					if lenDiff > 1 {
						continue
					}
				} else if lenDiff > 2 {
					continue
				}

				ratio := similarityRatio(titleWord, keywordWord)
				if ratio < minFuzzyRatio {
					continue
				}

				effective := kwLen
				if effective > 10 {
					effective = 10
				}
				score := ratio * (1 - 0.2*float64(lenDiff)) * float64(effective)
				if score > bestScore {
					bestScore = score
					best = fuzzyMatch{entry: entry, word: keywordWord, ratio: ratio, score: score}
					found = true
				}
			}
		}
	}

	return best, found
}

// fuzzyConfidence maps the winning ratio to the stage confidence.
func fuzzyConfidence(ratio float64) float64 {
	if ratio >= 0.85 {
		return 0.75
	}
	return 0.65
}

// similarityRatio computes a character-level similarity in [0,1] between two
// words, 1.0 meaning identical.
func similarityRatio(a, b string) float64 {
	m := difflib.NewMatcher(explodeRunes(a), explodeRunes(b))
	return m.Ratio()
}

func explodeRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
