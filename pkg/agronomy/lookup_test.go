package agronomy

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCrop string
	}{
		{"exact match", "wheat", "wheat"},
		{"exact match uppercase", "WHEAT", "wheat"},
		{"exact match with whitespace", "  rice  ", "rice"},
		{"input contains key", "basmati rice", "rice"},
		{"input contains key with qualifier", "winter wheat", "wheat"},
		{"key contains input", "sugarcan", "sugarcane"},
		{"key contains short input", "whea", "wheat"},
		{"unknown crop falls back", "unknown-crop", "generic"},
		{"empty string falls back", "", "generic"},
		{"whitespace only falls back", "   ", "generic"},
		{"gibberish falls back", "zzzzz", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lookup(tt.input)
			if got.Name != tt.wantCrop {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.input, got.Name, tt.wantCrop)
			}
		})
	}
}

func TestLookupIsTotalOverKnownCrops(t *testing.T) {
	for _, name := range Crops() {
		ref := Lookup(name)
		if ref.Name != name {
			t.Errorf("Lookup(%q) resolved to %q", name, ref.Name)
		}
		if ref.BaseYield <= 0 {
			t.Errorf("crop %q has non-positive base yield %v", name, ref.BaseYield)
		}
		if ref.OptimalPH.Min >= ref.OptimalPH.Max {
			t.Errorf("crop %q has inverted pH range %+v", name, ref.OptimalPH)
		}
		if len(ref.Pests) == 0 || len(ref.Diseases) == 0 {
			t.Errorf("crop %q missing pest or disease list", name)
		}
	}
}

func TestLookupDeterministicPartialMatch(t *testing.T) {
	// "groundnut wheat mix" contains two keys; the longest must win
	// every time, independent of map iteration order.
	const input = "groundnut wheat mix"
	first := Lookup(input).Name
	for i := 0; i < 100; i++ {
		if got := Lookup(input).Name; got != first {
			t.Fatalf("Lookup(%q) not deterministic: %q then %q", input, first, got)
		}
	}
	if first != "groundnut" {
		t.Errorf("Lookup(%q) = %q, want longest key %q", input, first, "groundnut")
	}
}

func TestKnown(t *testing.T) {
	if !Known("wheat") {
		t.Error("Known(wheat) = false, want true")
	}
	if Known("unknown-crop") {
		t.Error("Known(unknown-crop) = true, want false")
	}
}

func BenchmarkLookupExact(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Lookup("wheat")
	}
}

func BenchmarkLookupFallback(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Lookup("unknown-crop")
	}
}
