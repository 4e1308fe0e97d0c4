// Package impute fills missing ESG scores from cross-company statistics.
// Imputation is deliberately scoped to ESG only; the other numeric fields
// stay nil and the scorers fail loudly on them.
package impute

import (
	"errors"
	"math"
	"sort"

	"github.com/arryl/dealrank/internal/company"
)

// CorruptedPenalty discounts the imputed median for corrupted records.
const CorruptedPenalty = 0.9

// ErrNoValidESG is returned when no usable ESG sample exists to compute
// the median from. The run must abort rather than default silently.
var ErrNoValidESG = errors.New("impute: no valid ESG scores to compute median")

// ESG returns a copy of companies with every missing ESG score replaced
// by the penalized median of valid, non-corrupted samples, and ESGImputed
// set on every record. The input slice is not modified.
func ESG(companies []company.Company) ([]company.Company, error) {
	var valid []float64
	for _, c := range companies {
		if c.ESGScore != nil && !c.IsCorrupted {
			valid = append(valid, *c.ESGScore)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidESG
	}
	med := median(valid)

	out := make([]company.Company, len(companies))
	for i, c := range companies {
		if c.ESGScore == nil {
			penalty := 1.0
			if c.IsCorrupted {
				penalty = CorruptedPenalty
			}
			v := round1(med * penalty)
			c.ESGScore = &v
			c.ESGImputed = true
		} else {
			c.ESGImputed = false
		}
		out[i] = c
	}
	return out, nil
}

// median uses the standard even/odd formula: the middle value for odd
// counts, the mean of the two middle values for even counts.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
