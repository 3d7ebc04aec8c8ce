package agronomy

import "testing"

func f(v float64) *float64 { return &v }

func TestEstimateYield(t *testing.T) {
	tests := []struct {
		name     string
		crop     string
		soilType string
		soil     *SoilTest
		want     float64
	}{
		{
			name:     "wheat with all bonuses",
			crop:     "wheat",
			soilType: "Loamy",
			soil:     &SoilTest{N: f(100), P: f(60), K: f(40), PH: f(6.8)},
			// 45 * (1 + 0.10 + 0.15 + 0.05*3) = 63.0
			want: 63.0,
		},
		{
			name:     "unknown crop on sandy soil",
			crop:     "unknown-crop",
			soilType: "Sandy",
			want:     35.0,
		},
		{
			name:     "wheat base with no soil test and no soil match",
			crop:     "wheat",
			soilType: "Sandy",
			want:     45.0,
		},
		{
			name:     "wheat soil match only",
			crop:     "wheat",
			soilType: "Loamy",
			want:     49.5,
		},
		{
			name:     "wheat soil match case insensitive",
			crop:     "wheat",
			soilType: "loamy",
			want:     49.5,
		},
		{
			name:     "pH at lower bound counts as in range",
			crop:     "rice",
			soilType: "Sandy",
			soil:     &SoilTest{PH: f(5.5)},
			want:     46.0, // 40 * 1.15
		},
		{
			name:     "pH at upper bound counts as in range",
			crop:     "rice",
			soilType: "Sandy",
			soil:     &SoilTest{PH: f(7.0)},
			want:     46.0,
		},
		{
			name:     "pH slightly outside range is neutral",
			crop:     "wheat",
			soilType: "Sandy",
			soil:     &SoilTest{PH: f(5.5)},
			want:     45.0,
		},
		{
			name:     "pH far below range penalizes",
			crop:     "wheat",
			soilType: "Sandy",
			soil:     &SoilTest{PH: f(4.5)},
			want:     40.5, // 45 * 0.90
		},
		{
			name:     "pH far above range penalizes",
			crop:     "wheat",
			soilType: "Sandy",
			soil:     &SoilTest{PH: f(9.0)},
			want:     40.5,
		},
		{
			name:     "nutrient exactly at 80 percent qualifies",
			crop:     "wheat",
			soilType: "Sandy",
			soil:     &SoilTest{N: f(96)}, // 0.8 * 120
			want:     47.3,                // 45 * 1.05 = 47.25, rounds up
		},
		{
			name:     "nutrient just under 80 percent does not qualify",
			crop:     "wheat",
			soilType: "Sandy",
			soil:     &SoilTest{N: f(95.9)},
			want:     45.0,
		},
		{
			name:     "missing nutrients skip their terms",
			crop:     "wheat",
			soilType: "Sandy",
			soil:     &SoilTest{P: f(60)},
			want:     47.3,
		},
		{
			name:     "rice on preferred clay",
			crop:     "rice",
			soilType: "Clay",
			want:     44.0, // 40 * 1.10
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateYield(tt.crop, tt.soilType, tt.soil)
			if got != tt.want {
				t.Errorf("EstimateYield(%q, %q, %+v) = %v, want %v",
					tt.crop, tt.soilType, tt.soil, got, tt.want)
			}
		})
	}
}

func TestEstimateYieldMonotonic(t *testing.T) {
	// Adding a qualifying condition must never decrease the estimate.
	base := EstimateYield("wheat", "Sandy", nil)

	steps := []struct {
		name     string
		soilType string
		soil     *SoilTest
	}{
		{"add soil match", "Loamy", nil},
		{"add good pH", "Loamy", &SoilTest{PH: f(6.8)}},
		{"add nitrogen", "Loamy", &SoilTest{PH: f(6.8), N: f(120)}},
		{"add phosphorus", "Loamy", &SoilTest{PH: f(6.8), N: f(120), P: f(60)}},
		{"add potassium", "Loamy", &SoilTest{PH: f(6.8), N: f(120), P: f(60), K: f(40)}},
	}

	prev := base
	for _, s := range steps {
		got := EstimateYield("wheat", s.soilType, s.soil)
		if got < prev {
			t.Errorf("%s: estimate decreased from %v to %v", s.name, prev, got)
		}
		prev = got
	}
}

func TestEstimateYieldDetailFactors(t *testing.T) {
	est := EstimateYieldDetail("wheat", "Loamy", &SoilTest{N: f(100), P: f(60), K: f(40), PH: f(6.8)})
	if est.Multiplier != 1.40 {
		t.Errorf("Multiplier = %v, want 1.40", est.Multiplier)
	}
	if len(est.Factors) != 5 {
		t.Errorf("Factors = %v, want 5 entries", est.Factors)
	}
	if est.BaseYield != 45 {
		t.Errorf("BaseYield = %v, want 45", est.BaseYield)
	}
}

func TestEstimateYieldPure(t *testing.T) {
	soil := &SoilTest{N: f(100), P: f(60), K: f(40), PH: f(6.8)}
	first := EstimateYield("wheat", "Loamy", soil)
	for i := 0; i < 10; i++ {
		if got := EstimateYield("wheat", "Loamy", soil); got != first {
			t.Fatalf("estimate changed between calls: %v then %v", first, got)
		}
	}
	// Input must not be mutated.
	if *soil.N != 100 || *soil.PH != 6.8 {
		t.Error("EstimateYield mutated its soil test input")
	}
}

func BenchmarkEstimateYield(b *testing.B) {
	soil := &SoilTest{N: f(100), P: f(60), K: f(40), PH: f(6.8)}
	for i := 0; i < b.N; i++ {
		EstimateYield("wheat", "Loamy", soil)
	}
}
