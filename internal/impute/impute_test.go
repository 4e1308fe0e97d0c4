package impute

import (
	"testing"

	"github.com/arryl/dealrank/internal/company"
)

func ptr(v float64) *float64 { return &v }

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd count", []float64{30, 10, 20}, 20},
		{"even count", []float64{40, 10, 30, 20}, 25},
		{"single value", []float64{55}, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.values); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestESGImputesMissingValues(t *testing.T) {
	companies := []company.Company{
		{Name: "A", ESGScore: ptr(60)},
		{Name: "B", ESGScore: ptr(70)},
		{Name: "C", ESGScore: nil},
	}

	out, err := ESG(companies)
	if err != nil {
		t.Fatalf("ESG() error = %v", err)
	}

	// Median of [60, 70] = 65, no penalty for clean records.
	if out[2].ESGScore == nil || *out[2].ESGScore != 65.0 {
		t.Errorf("imputed ESG = %v, want 65.0", out[2].ESGScore)
	}
	if !out[2].ESGImputed {
		t.Error("expected ESGImputed=true for imputed record")
	}
	if out[0].ESGImputed || out[1].ESGImputed {
		t.Error("expected ESGImputed=false for records with values")
	}
}

func TestESGPenalizesCorruptedRecords(t *testing.T) {
	companies := []company.Company{
		{Name: "A", ESGScore: ptr(60)},
		{Name: "B", ESGScore: ptr(70)},
		{Name: "C", ESGScore: nil, IsCorrupted: true},
	}

	out, err := ESG(companies)
	if err != nil {
		t.Fatalf("ESG() error = %v", err)
	}

	// 65 * 0.9 = 58.5
	if *out[2].ESGScore != 58.5 {
		t.Errorf("imputed ESG = %v, want 58.5", *out[2].ESGScore)
	}
}

func TestESGExcludesCorruptedFromSample(t *testing.T) {
	companies := []company.Company{
		{Name: "A", ESGScore: ptr(60)},
		{Name: "B", ESGScore: ptr(999), IsCorrupted: true},
		{Name: "C", ESGScore: nil},
	}

	out, err := ESG(companies)
	if err != nil {
		t.Fatalf("ESG() error = %v", err)
	}

	// Corrupted B is excluded from the sample, so median = 60. B keeps
	// its own (suspect) value because it is present.
	if *out[2].ESGScore != 60.0 {
		t.Errorf("imputed ESG = %v, want 60.0", *out[2].ESGScore)
	}
	if *out[1].ESGScore != 999.0 {
		t.Errorf("present ESG overwritten: got %v", *out[1].ESGScore)
	}
}

func TestESGEmptySampleFails(t *testing.T) {
	companies := []company.Company{
		{Name: "A", ESGScore: nil},
		{Name: "B", ESGScore: ptr(50), IsCorrupted: true},
	}

	if _, err := ESG(companies); err != ErrNoValidESG {
		t.Errorf("ESG() error = %v, want ErrNoValidESG", err)
	}
}

func TestESGDoesNotMutateInput(t *testing.T) {
	companies := []company.Company{
		{Name: "A", ESGScore: ptr(60)},
		{Name: "B", ESGScore: nil},
	}

	if _, err := ESG(companies); err != nil {
		t.Fatalf("ESG() error = %v", err)
	}
	if companies[1].ESGScore != nil {
		t.Error("input slice was mutated")
	}
	if companies[1].ESGImputed {
		t.Error("input slice ESGImputed flag was mutated")
	}
}
