package scoring

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		min    float64
		max    float64
		invert bool
		want   float64
	}{
		{"min of range", 10, 10, 30, false, 0.0},
		{"max of range", 30, 10, 30, false, 1.0},
		{"midpoint", 20, 10, 30, false, 0.5},
		{"inverted min", 10, 10, 30, true, 1.0},
		{"inverted max", 30, 10, 30, true, 0.0},
		{"degenerate range", 15, 15, 15, false, 0.5},
		{"degenerate range inverted", 15, 15, 15, true, 0.5},
		{"below range clamps", 5, 10, 30, false, 0.0},
		{"above range clamps", 40, 10, 30, false, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.value, tt.min, tt.max, tt.invert); got != tt.want {
				t.Errorf("Normalize(%v, %v, %v, %v) = %v, want %v",
					tt.value, tt.min, tt.max, tt.invert, got, tt.want)
			}
		})
	}
}

// Normalize is invariant under a monotonic identity rescaling of the
// whole set: scaling value, min and max by the same positive factor
// yields the same score.
func TestNormalizeRescalingInvariance(t *testing.T) {
	for _, k := range []float64{2, 10, 0.5} {
		a := Normalize(20, 10, 30, false)
		b := Normalize(20*k, 10*k, 30*k, false)
		if diff := a - b; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("rescaling by %v changed score: %v vs %v", k, a, b)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5) = %v, want 0", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5) = %v, want 1", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Clamp(0.3) = %v, want 0.3", got)
	}
}

func TestRound4(t *testing.T) {
	if got := Round4(0.123456); got != 0.1235 {
		t.Errorf("Round4(0.123456) = %v, want 0.1235", got)
	}
	if got := Round4(0.5); got != 0.5 {
		t.Errorf("Round4(0.5) = %v, want 0.5", got)
	}
}
