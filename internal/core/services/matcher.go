package services

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/archivist-labs/docmatch-cli/internal/core/domain"
)

const (
	// DefaultThreshold is the partial-similarity score a snippet must
	// exceed to count as a hit. Scores range 0-100; 80 tolerates OCR
	// noise without admitting unrelated text.
	DefaultThreshold = 80

	// DefaultExcerptRadius is the number of bytes kept on each side of
	// a located snippet when building an evidence excerpt.
	DefaultExcerptRadius = 50

	// fallbackExcerptLen is the leading excerpt length used when a
	// fuzzy hit has no exact occurrence in the PDF text.
	fallbackExcerptLen = 100
)

// Matcher decides which PDF a record most likely belongs to. For each
// (snippet, PDF) pair it computes a 0-100 partial similarity — the
// snippet aligned against the best-matching window of the PDF text —
// and counts a hit when the score exceeds the threshold. The PDF with
// the most hits wins; ties go to the lexicographically smallest PDF
// identifier so the choice is stable across runs.
type Matcher struct {
	threshold     int
	excerptRadius int
}

// NewMatcher creates a matcher. Non-positive arguments fall back to
// the documented defaults.
func NewMatcher(threshold, excerptRadius int) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if excerptRadius <= 0 {
		excerptRadius = DefaultExcerptRadius
	}
	return &Matcher{threshold: threshold, excerptRadius: excerptRadius}
}

// Match scores one record against the text table and returns its
// result. A record with no snippets, or no snippet exceeding the
// threshold against any PDF, yields a result with no best PDF.
// The table is read-only; Match never mutates it.
func (m *Matcher) Match(rec *domain.Record, texts domain.TextTable) domain.MatchResult {
	result := domain.MatchResult{RecordID: rec.ID}
	if len(rec.Snippets) == 0 || len(texts) == 0 {
		return result
	}

	scores := make(domain.MatchScore, len(texts))
	for id, text := range texts {
		for _, snippet := range rec.Snippets {
			if snippet == "" {
				continue
			}
			if fuzzy.PartialRatio(snippet, text) > m.threshold {
				scores[id]++
			}
		}
	}

	best, count := selectBest(scores)
	if count == 0 {
		return result
	}
	result.BestPDF = best
	result.MatchCount = count

	// Recompute per-snippet hits against the winner to assemble the
	// audit evidence.
	bestText := texts[best]
	for _, snippet := range rec.Snippets {
		if snippet == "" {
			continue
		}
		if fuzzy.PartialRatio(snippet, bestText) > m.threshold {
			result.Evidence = append(result.Evidence, domain.Evidence{
				Snippet: snippet,
				Excerpt: m.excerpt(bestText, snippet),
			})
		}
	}
	return result
}

// selectBest returns the PDF with the maximum hit count. Candidates
// are visited in sorted identifier order with a strictly-greater
// comparison, so equal counts resolve to the smallest identifier.
func selectBest(scores domain.MatchScore) (string, int) {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	best := ""
	count := 0
	for _, id := range ids {
		if scores[id] > count {
			best = id
			count = scores[id]
		}
	}
	return best, count
}

// excerpt extracts a bounded window of text around the snippet's
// occurrence. The locate is case-insensitive; when the fuzzy hit has
// no exact occurrence the leading fallbackExcerptLen bytes stand in.
// Newlines are flattened to spaces for tabular export.
func (m *Matcher) excerpt(text, snippet string) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(snippet))
	if idx < 0 {
		end := fallbackExcerptLen
		if end > len(text) {
			end = len(text)
		}
		return flattenNewlines(text[:end])
	}

	start := idx - m.excerptRadius
	if start < 0 {
		start = 0
	}
	end := idx + len(snippet) + m.excerptRadius
	if end > len(text) {
		end = len(text)
	}
	return flattenNewlines(text[start:end])
}

var newlineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func flattenNewlines(s string) string {
	return newlineFlattener.Replace(s)
}
