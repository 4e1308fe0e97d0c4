// Package scoring provides the three normalized scoring functions over
// the company collection. All functions are stateless and perform no I/O.
package scoring

import "github.com/arryl/dealrank/internal/company"

// Financial score weights.
const (
	WeightGrowth = 0.4
	WeightMargin = 0.6
)

// Financial scores each company on revenue growth and EBITDA margin,
// min-max normalized across the full set. Scores are in [0, 1].
func Financial(companies []company.Company) (map[string]float64, error) {
	growths := make([]float64, len(companies))
	margins := make([]float64, len(companies))
	for i, c := range companies {
		g, err := require(c.Name, "Revenue_Growth_3Y", c.RevenueGrowth)
		if err != nil {
			return nil, err
		}
		m, err := require(c.Name, "EBITDA_Margin", c.EBITDAMargin)
		if err != nil {
			return nil, err
		}
		growths[i] = g
		margins[i] = m
	}

	gMin, gMax := minMax(growths)
	mMin, mMax := minMax(margins)

	scores := make(map[string]float64, len(companies))
	for i, c := range companies {
		g := Normalize(growths[i], gMin, gMax, false)
		m := Normalize(margins[i], mMin, mMax, false)
		scores[c.Name] = Round4(WeightGrowth*g + WeightMargin*m)
	}
	return scores, nil
}
