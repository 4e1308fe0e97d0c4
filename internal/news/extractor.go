// Package news derives per-company sentiment signals from free-text
// commentary using keyword counting.
package news

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arryl/dealrank/internal/keywords"
)

const (
	// UncertaintyDiscount is subtracted from the discount factor per
	// uncertainty keyword occurrence.
	UncertaintyDiscount = 0.15

	// MinDiscount floors the uncertainty discount factor.
	MinDiscount = 0.3
)

// Extractor derives sentiment signals from news text.
type Extractor struct {
	taxonomy *keywords.Taxonomy
	log      zerolog.Logger
}

// NewExtractor creates a sentiment extractor over the given taxonomy.
func NewExtractor(taxonomy *keywords.Taxonomy, log zerolog.Logger) *Extractor {
	return &Extractor{taxonomy: taxonomy, log: log}
}

// ExtractFile reads a news text file and extracts sentiment signals.
func (e *Extractor) ExtractFile(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading news text: %w", err)
	}
	return e.Extract(string(data)), nil
}

// Extract splits text into paragraphs on blank lines and returns a map
// from company key to sentiment in [-1, 1]. When two paragraphs share a
// key, the later paragraph wins.
func (e *Extractor) Extract(text string) map[string]float64 {
	signals := make(map[string]float64)

	for _, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		key := CompanyKey(para)
		sentiment := e.scoreParagraph(para)
		signals[key] = sentiment

		e.log.Debug().
			Str("company_key", key).
			Float64("sentiment", sentiment).
			Msg("Paragraph scored")
	}

	e.log.Info().Int("signals", len(signals)).Msg("News sentiment extracted")
	return signals
}

// CompanyKey derives the join key for a paragraph: its first two
// whitespace-delimited tokens joined by a single space. This is a
// heuristic proxy for the company name and may not match the company
// table exactly; unmatched companies score neutral downstream.
func CompanyKey(paragraph string) string {
	tokens := strings.Fields(paragraph)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	return strings.Join(tokens, " ")
}

// scoreParagraph counts substring occurrences of each taxonomy keyword
// in the lower-cased paragraph and combines them into a discounted net
// sentiment, rounded to 3 decimals.
func (e *Extractor) scoreParagraph(paragraph string) float64 {
	lower := strings.ToLower(paragraph)

	pos := countOccurrences(lower, e.taxonomy.Positive)
	neg := countOccurrences(lower, e.taxonomy.Negative)
	unc := countOccurrences(lower, e.taxonomy.Uncertainty)

	raw := float64(pos-neg) / math.Max(float64(pos+neg), 1)
	discount := math.Max(1.0-UncertaintyDiscount*float64(unc), MinDiscount)

	return math.Round(raw*discount*1000) / 1000
}

func countOccurrences(text string, kws []string) int {
	total := 0
	for _, kw := range kws {
		total += strings.Count(text, kw)
	}
	return total
}
