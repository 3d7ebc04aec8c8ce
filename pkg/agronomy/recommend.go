package agronomy

import (
	"fmt"
	"strings"
)

// Recommendations groups advice for one crop planting by concern. Slices
// keep insertion order so the UI can render them as given.
type Recommendations struct {
	Irrigation  []string `json:"irrigation"`
	Fertilizer  []string `json:"fertilizer"`
	PestControl []string `json:"pestControl"`
	General     []string `json:"general"`
}

// Recommend derives categorized advice from the crop reference and the
// optional soil test. Deterministic and side-effect free; a valid result
// is produced for any input because Lookup is total.
func Recommend(cropType, soilType string, soil *SoilTest) Recommendations {
	ref := Lookup(cropType)
	var rec Recommendations

	switch ref.WaterRequirement {
	case WaterHigh:
		rec.Irrigation = append(rec.Irrigation,
			fmt.Sprintf("%s has a high water requirement; irrigate frequently and maintain consistent moisture", ref.Name),
			"Consider drip or sprinkler systems to keep water use efficient at high volumes")
	case WaterMedium:
		rec.Irrigation = append(rec.Irrigation,
			fmt.Sprintf("%s needs moderate watering; irrigate at key growth stages and after dry spells", ref.Name),
			"Mulching helps retain soil moisture between irrigation cycles")
	case WaterLow:
		rec.Irrigation = append(rec.Irrigation,
			fmt.Sprintf("%s is drought tolerant; avoid over-watering and let topsoil dry between cycles", ref.Name),
			"Light irrigation at flowering and grain filling is usually sufficient")
	}

	rec.Fertilizer = append(rec.Fertilizer, fertilizerAdvice(ref, soil)...)

	rec.PestControl = append(rec.PestControl,
		fmt.Sprintf("Watch for common %s pests: %s", ref.Name, strings.Join(ref.Pests, ", ")),
		fmt.Sprintf("Known diseases include %s; rotate crops and use certified seed", strings.Join(ref.Diseases, ", ")))

	rec.General = append(rec.General,
		fmt.Sprintf("Expected harvest: %s", ref.HarvestSeason),
		fmt.Sprintf("Typical growth duration: %d days from planting", ref.GrowthDuration))
	if soilType != "" && !soilMatches(ref, soilType) {
		rec.General = append(rec.General,
			fmt.Sprintf("%s soil is not ideal for %s; preferred soils are %s",
				soilType, ref.Name, strings.Join(ref.PreferredSoils, ", ")))
	}

	return rec
}

func fertilizerAdvice(ref CropReference, soil *SoilTest) []string {
	var out []string

	type nutrient struct {
		label    string
		source   string
		measured *float64
		required float64
	}
	nutrients := []nutrient{
		{"nitrogen", "urea", nil, ref.Nutrients.N},
		{"phosphorus", "DAP", nil, ref.Nutrients.P},
		{"potassium", "MOP", nil, ref.Nutrients.K},
	}
	if soil != nil {
		nutrients[0].measured = soil.N
		nutrients[1].measured = soil.P
		nutrients[2].measured = soil.K
	}

	for _, n := range nutrients {
		if !nutrientSufficient(n.measured, n.required) {
			out = append(out, fmt.Sprintf("Apply %s via %s (target: %.0f kg/ha)", n.label, n.source, n.required))
		}
	}

	if soil != nil && soil.PH != nil {
		switch {
		case *soil.PH < ref.OptimalPH.Min:
			out = append(out, fmt.Sprintf("Soil is acidic for %s (pH %.1f); apply agricultural lime to raise pH toward %.1f",
				ref.Name, *soil.PH, ref.OptimalPH.Min))
		case *soil.PH > ref.OptimalPH.Max:
			out = append(out, fmt.Sprintf("Soil is alkaline for %s (pH %.1f); apply elemental sulfur or gypsum to lower pH toward %.1f",
				ref.Name, *soil.PH, ref.OptimalPH.Max))
		}
	}

	return out
}
