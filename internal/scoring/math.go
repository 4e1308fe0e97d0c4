package scoring

import "math"

// DegenerateNorm is returned by Normalize when all values in the set are
// equal and min-max scaling is undefined.
const DegenerateNorm = 0.5

// Normalize min-max scales value into [0, 1] over [min, max]. When
// invert is set, higher raw values map to lower scores.
func Normalize(value, min, max float64, invert bool) float64 {
	if max == min {
		return DegenerateNorm
	}
	score := Clamp((value-min)/(max-min), 0, 1)
	if invert {
		return 1 - score
	}
	return score
}

// Clamp constrains a value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Round4 rounds to 4 decimal places, the precision of all score maps.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func minMax(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
