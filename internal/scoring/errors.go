package scoring

import "fmt"

// MissingFieldError reports a numeric field that was still nil when a
// scorer needed it. Only ESG is imputed upstream, so the other four
// fields can legitimately arrive missing; scoring fails loudly rather
// than doing arithmetic on absent values.
type MissingFieldError struct {
	Company string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("scoring: company %q has no value for %s", e.Company, e.Field)
}

func require(name string, field string, v *float64) (float64, error) {
	if v == nil {
		return 0, &MissingFieldError{Company: name, Field: field}
	}
	return *v, nil
}
