package agronomy

import (
	"strings"
	"testing"
)

func TestRecommendRiceNoSoilTest(t *testing.T) {
	rec := Recommend("rice", "Sandy", nil)

	// Rice is a high-water crop: exactly the two high-requirement lines.
	if len(rec.Irrigation) != 2 {
		t.Fatalf("Irrigation = %v, want exactly 2 entries", rec.Irrigation)
	}
	if !strings.Contains(rec.Irrigation[0], "high water requirement") {
		t.Errorf("Irrigation[0] = %q, want high-water advice", rec.Irrigation[0])
	}

	// No soil test: all three nutrients flagged.
	if len(rec.Fertilizer) != 3 {
		t.Fatalf("Fertilizer = %v, want 3 entries", rec.Fertilizer)
	}
	for i, label := range []string{"nitrogen", "phosphorus", "potassium"} {
		if !strings.Contains(rec.Fertilizer[i], label) {
			t.Errorf("Fertilizer[%d] = %q, want advice for %s", i, rec.Fertilizer[i], label)
		}
		if !strings.Contains(rec.Fertilizer[i], "target:") {
			t.Errorf("Fertilizer[%d] = %q, want target amount", i, rec.Fertilizer[i])
		}
	}

	// Pest and disease lines are unconditional.
	if len(rec.PestControl) != 2 {
		t.Fatalf("PestControl = %v, want 2 entries", rec.PestControl)
	}
	if !strings.Contains(rec.PestControl[0], "stem borer") {
		t.Errorf("PestControl[0] = %q, want rice pest list", rec.PestControl[0])
	}

	// Sandy is not a preferred rice soil, so the mismatch note appears
	// after the harvest and duration lines.
	if len(rec.General) != 3 {
		t.Fatalf("General = %v, want 3 entries", rec.General)
	}
	if !strings.Contains(rec.General[0], "Kharif") {
		t.Errorf("General[0] = %q, want harvest season", rec.General[0])
	}
	if !strings.Contains(rec.General[1], "125 days") {
		t.Errorf("General[1] = %q, want growth duration", rec.General[1])
	}
	if !strings.Contains(rec.General[2], "not ideal") {
		t.Errorf("General[2] = %q, want soil mismatch note", rec.General[2])
	}
}

func TestRecommendFertilizerBranches(t *testing.T) {
	tests := []struct {
		name           string
		soil           *SoilTest
		wantFertilizer int
		wantSubstring  string
	}{
		{
			name:           "all nutrients sufficient and pH good",
			soil:           &SoilTest{N: f(120), P: f(60), K: f(40), PH: f(6.8)},
			wantFertilizer: 0,
		},
		{
			name:           "low nitrogen only",
			soil:           &SoilTest{N: f(50), P: f(60), K: f(40), PH: f(6.8)},
			wantFertilizer: 1,
			wantSubstring:  "nitrogen",
		},
		{
			name:           "acidic soil adds lime line",
			soil:           &SoilTest{N: f(120), P: f(60), K: f(40), PH: f(5.0)},
			wantFertilizer: 1,
			wantSubstring:  "lime",
		},
		{
			name:           "alkaline soil adds sulfur line",
			soil:           &SoilTest{N: f(120), P: f(60), K: f(40), PH: f(8.5)},
			wantFertilizer: 1,
			wantSubstring:  "sulfur",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend("wheat", "Loamy", tt.soil)
			if len(rec.Fertilizer) != tt.wantFertilizer {
				t.Fatalf("Fertilizer = %v, want %d entries", rec.Fertilizer, tt.wantFertilizer)
			}
			if tt.wantSubstring != "" && !strings.Contains(rec.Fertilizer[0], tt.wantSubstring) {
				t.Errorf("Fertilizer[0] = %q, want substring %q", rec.Fertilizer[0], tt.wantSubstring)
			}
		})
	}
}

func TestRecommendPreferredSoilOmitsMismatchNote(t *testing.T) {
	rec := Recommend("wheat", "Loamy", nil)
	if len(rec.General) != 2 {
		t.Errorf("General = %v, want only harvest and duration lines", rec.General)
	}
}

func TestRecommendIrrigationByWaterRequirement(t *testing.T) {
	tests := []struct {
		crop string
		want string
	}{
		{"rice", "high water requirement"},
		{"wheat", "moderate watering"},
		{"mustard", "drought tolerant"},
	}
	for _, tt := range tests {
		t.Run(tt.crop, func(t *testing.T) {
			rec := Recommend(tt.crop, "", nil)
			if len(rec.Irrigation) != 2 {
				t.Fatalf("Irrigation = %v, want 2 entries", rec.Irrigation)
			}
			if !strings.Contains(rec.Irrigation[0], tt.want) {
				t.Errorf("Irrigation[0] = %q, want substring %q", rec.Irrigation[0], tt.want)
			}
		})
	}
}

func TestRecommendUnknownCropUsesDefault(t *testing.T) {
	rec := Recommend("unknown-crop", "Sandy", nil)
	if len(rec.Irrigation) == 0 || len(rec.Fertilizer) == 0 ||
		len(rec.PestControl) == 0 || len(rec.General) == 0 {
		t.Errorf("Recommend for unknown crop returned empty category: %+v", rec)
	}
}
