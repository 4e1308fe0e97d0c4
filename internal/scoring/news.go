package scoring

import "github.com/arryl/dealrank/internal/company"

// NeutralSentiment is used when no news signal matches a company name.
// The news extractor's paragraph key is only a heuristic proxy for the
// company name, so misses are expected and not an error.
const NeutralSentiment = 0.0

// CorruptedNewsPenalty scales down the news score of corrupted records.
const CorruptedNewsPenalty = 0.85

// News maps each company's sentiment from [-1, 1] into [0, 1], looked
// up by company name with a neutral default, penalizing corrupted
// records.
func News(companies []company.Company, signals map[string]float64) map[string]float64 {
	scores := make(map[string]float64, len(companies))
	for _, c := range companies {
		sentiment, ok := signals[c.Name]
		if !ok {
			sentiment = NeutralSentiment
		}
		score := (sentiment + 1) / 2
		if c.IsCorrupted {
			score *= CorruptedNewsPenalty
		}
		scores[c.Name] = Round4(score)
	}
	return scores
}
