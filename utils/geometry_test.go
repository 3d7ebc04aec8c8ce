package utils

import (
	"math"
	"testing"
)

// Roughly a 1km x 1km square near the equator: about 100 hectares.
const squareKm = `{
	"type": "Polygon",
	"coordinates": [[
		[77.0, 10.0],
		[77.009, 10.0],
		[77.009, 10.009],
		[77.0, 10.009],
		[77.0, 10.0]
	]]
}`

func TestBoundaryAreaHectares(t *testing.T) {
	ha, err := BoundaryAreaHectares([]byte(squareKm))
	if err != nil {
		t.Fatalf("BoundaryAreaHectares: %v", err)
	}
	// ~0.009 degrees is ~1km; expect roughly 100 ha with tolerance for
	// latitude distortion.
	if ha < 90 || ha > 110 {
		t.Errorf("area = %v ha, want roughly 100", ha)
	}
}

func TestBoundaryAreaHectaresFeature(t *testing.T) {
	feature := `{"type":"Feature","properties":{},"geometry":` + squareKm + `}`
	ha, err := BoundaryAreaHectares([]byte(feature))
	if err != nil {
		t.Fatalf("BoundaryAreaHectares(feature): %v", err)
	}
	if ha <= 0 {
		t.Errorf("area = %v ha, want positive", ha)
	}
}

func TestBoundaryAreaHectaresErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"not geojson", `{"hello":"world"}`},
		{"wrong geometry type", `{"type":"Point","coordinates":[77.0,10.0]}`},
		{"garbage", `not json at all`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BoundaryAreaHectares([]byte(tt.raw)); err == nil {
				t.Errorf("BoundaryAreaHectares(%q) succeeded, want error", tt.raw)
			}
		})
	}
}

func TestBoundaryAreaWindingOrderIrrelevant(t *testing.T) {
	clockwise := `{
		"type": "Polygon",
		"coordinates": [[
			[77.0, 10.0],
			[77.0, 10.009],
			[77.009, 10.009],
			[77.009, 10.0],
			[77.0, 10.0]
		]]
	}`
	a, err := BoundaryAreaHectares([]byte(squareKm))
	if err != nil {
		t.Fatal(err)
	}
	b, err := BoundaryAreaHectares([]byte(clockwise))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a-b) > 0.01 {
		t.Errorf("winding order changed area: %v vs %v", a, b)
	}
}
