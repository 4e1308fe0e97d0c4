// Package memo translates free-text client preferences into numeric and
// boolean screening constraints via ordered phrase matching.
package memo

import (
	"fmt"
	"os"
	"strings"
)

// Volatility ceilings by matched phrase; first match wins.
const (
	VolatilityStrict   = 20.0
	VolatilityModerate = 25.0
	VolatilityDefault  = 35.0
)

// Debt-to-equity ceilings by matched phrase.
const (
	LeverageStrict   = 1.5
	LeverageModerate = 2.0
	LeverageDefault  = 3.0
)

// Minimum ESG thresholds. Report-only: scoring does not enforce these.
const (
	ESGStrict   = 75
	ESGTempered = 65
	ESGDefault  = 50
)

// Constraints is the single global constraint set derived from the memo.
type Constraints struct {
	MaxVolatility       float64
	MaxDebtToEquity     float64
	MinESGScore         int
	StabilityPreference bool
}

// TranslateFile reads a memo file and translates it.
func TranslateFile(path string) (Constraints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Constraints{}, fmt.Errorf("reading client memo: %w", err)
	}
	return Translate(string(data)), nil
}

// Translate maps memo prose to constraints. Matching is case-insensitive
// substring search; within each constraint the first matching rule wins.
func Translate(text string) Constraints {
	lower := strings.ToLower(text)
	c := Constraints{
		MaxVolatility:   VolatilityDefault,
		MaxDebtToEquity: LeverageDefault,
		MinESGScore:     ESGDefault,
	}

	switch {
	case strings.Contains(lower, "avoid high volatility"), strings.Contains(lower, "low volatility"):
		c.MaxVolatility = VolatilityStrict
	case strings.Contains(lower, "moderate risk"):
		c.MaxVolatility = VolatilityModerate
	}

	switch {
	case strings.Contains(lower, "sensitive to excessive leverage"), strings.Contains(lower, "avoid leverage"):
		c.MaxDebtToEquity = LeverageStrict
	case strings.Contains(lower, "moderate"):
		c.MaxDebtToEquity = LeverageModerate
	}

	if strings.Contains(lower, "esg is important") {
		if strings.Contains(lower, "not at the expense") {
			c.MinESGScore = ESGTempered
		} else {
			c.MinESGScore = ESGStrict
		}
	}

	c.StabilityPreference = strings.Contains(lower, "long-term stability") ||
		strings.Contains(lower, "stability preferred")

	return c
}
