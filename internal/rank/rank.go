// Package rank combines the three scorer outputs into a final weighted
// score, ranks companies, and estimates recommendation confidence.
package rank

import (
	"fmt"
	"math"
	"sort"
)

// Composite weights. Risk is heaviest for a cautious investor profile.
const (
	WeightFinancial = 0.30
	WeightRisk      = 0.45
	WeightNews      = 0.25
)

// Confidence model: decrement-based, starting at BaseConfidence with a
// hard floor.
const (
	BaseConfidence      = 0.80
	ConfidenceFloor     = 0.3
	NarrowGapThreshold  = 0.05
	GapDecrement        = 0.15
	CorruptionDecrement = 0.07
	ImputationDecrement = 0.05
)

// Entry is one company's scores in the final ranking.
type Entry struct {
	Name      string  `json:"name"`
	Financial float64 `json:"financial"`
	Risk      float64 `json:"risk"`
	News      float64 `json:"news"`
	Final     float64 `json:"final"`
}

// Assessment is the ranking verdict with its confidence estimate.
type Assessment struct {
	Ranking            []Entry
	Recommended        string
	TopGap             float64
	Confidence         float64
	UncertaintyFactors []string
}

// Rank computes the weighted composite per company, sorts descending by
// final score with ties broken by load order (stable sort), and derives
// the confidence estimate. order must be the company load order.
func Rank(order []string, financial, risk, news map[string]float64, anyCorrupted, anyImputed bool) Assessment {
	entries := make([]Entry, len(order))
	for i, name := range order {
		fin := financial[name]
		rsk := risk[name]
		nws := news[name]
		entries[i] = Entry{
			Name:      name,
			Financial: fin,
			Risk:      rsk,
			News:      nws,
			Final:     round4(WeightFinancial*fin + WeightRisk*rsk + WeightNews*nws),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Final > entries[j].Final
	})

	topGap := 0.0
	if len(entries) >= 2 {
		topGap = entries[0].Final - entries[1].Final
	}

	recommended := ""
	if len(entries) > 0 {
		recommended = entries[0].Name
	}

	confidence, factors := estimateConfidence(topGap, anyCorrupted, anyImputed)

	return Assessment{
		Ranking:            entries,
		Recommended:        recommended,
		TopGap:             topGap,
		Confidence:         confidence,
		UncertaintyFactors: factors,
	}
}

// estimateConfidence applies the fixed decrements and returns the
// triggered uncertainty factors in fixed order: gap, corruption,
// imputation.
func estimateConfidence(topGap float64, anyCorrupted, anyImputed bool) (float64, []string) {
	confidence := BaseConfidence
	factors := []string{}

	if topGap < NarrowGapThreshold {
		confidence -= GapDecrement
		factors = append(factors, fmt.Sprintf("Top 2 scores very close (gap=%.3f)", topGap))
	}
	if anyCorrupted {
		confidence -= CorruptionDecrement
		factors = append(factors, "Corrupted data present")
	}
	if anyImputed {
		confidence -= ImputationDecrement
		factors = append(factors, "ESG values were imputed")
	}

	confidence = math.Round(math.Max(ConfidenceFloor, confidence)*100) / 100
	return confidence, factors
}

// Names returns the ranked company names, best first.
func (a Assessment) Names() []string {
	names := make([]string, len(a.Ranking))
	for i, e := range a.Ranking {
		names[i] = e.Name
	}
	return names
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
