package scoring

import (
	"github.com/arryl/dealrank/internal/company"
	"github.com/arryl/dealrank/internal/memo"
)

// Risk score weights.
const (
	WeightVolatility      = 0.35
	WeightLeverage        = 0.35
	WeightOperationalRisk = 0.30
)

// ConstraintBreachPenalty is subtracted per breached constraint, so a
// company breaching both ceilings loses 0.6 before the zero floor.
const ConstraintBreachPenalty = 0.3

// operationalRiskWeights maps the categorical risk label to a score.
var operationalRiskWeights = map[string]float64{
	"Low":    1.0,
	"Medium": 0.6,
	"High":   0.2,
}

// UnknownOperationalRisk is the neutral weight for unrecognized labels.
const UnknownOperationalRisk = 0.5

// Risk scores each company on inverted volatility and leverage plus the
// categorical operational-risk weight, then subtracts constraint breach
// penalties. Scores are floored at 0 and lie in [0, 1].
func Risk(companies []company.Company, constraints memo.Constraints) (map[string]float64, error) {
	vols := make([]float64, len(companies))
	dtes := make([]float64, len(companies))
	for i, c := range companies {
		v, err := require(c.Name, "Volatility_1Y", c.Volatility)
		if err != nil {
			return nil, err
		}
		d, err := require(c.Name, "Debt_to_Equity", c.DebtToEquity)
		if err != nil {
			return nil, err
		}
		vols[i] = v
		dtes[i] = d
	}

	vMin, vMax := minMax(vols)
	dMin, dMax := minMax(dtes)

	scores := make(map[string]float64, len(companies))
	for i, c := range companies {
		vol := Normalize(vols[i], vMin, vMax, true)
		dte := Normalize(dtes[i], dMin, dMax, true)

		op, ok := operationalRiskWeights[c.OperationalRisk]
		if !ok {
			op = UnknownOperationalRisk
		}

		penalty := 0.0
		if vols[i] > constraints.MaxVolatility {
			penalty += ConstraintBreachPenalty
		}
		if dtes[i] > constraints.MaxDebtToEquity {
			penalty += ConstraintBreachPenalty
		}

		base := WeightVolatility*vol + WeightLeverage*dte + WeightOperationalRisk*op
		scores[c.Name] = Round4(maxFloat(base-penalty, 0.0))
	}
	return scores, nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
