package agronomy

import (
	"math"
	"strings"
)

// nutrientThreshold is the fraction of a crop's requirement a soil test
// must meet for the nutrient bonus to apply.
const nutrientThreshold = 0.8

// YieldEstimate breaks down how the base yield was adjusted so callers
// can show the farmer which conditions contributed.
type YieldEstimate struct {
	Crop       string   `json:"crop"`
	BaseYield  float64  `json:"baseYield"`
	Multiplier float64  `json:"multiplier"`
	Estimated  float64  `json:"estimatedYield"` // tons/hectare, one decimal
	Factors    []string `json:"factors,omitempty"`
}

// EstimateYield returns the adjusted yield in tons/hectare for a crop on
// the given soil, rounded to one decimal place. soil may be nil; absent
// measurements simply skip their adjustment.
func EstimateYield(cropType, soilType string, soil *SoilTest) float64 {
	return EstimateYieldDetail(cropType, soilType, soil).Estimated
}

// EstimateYieldDetail is EstimateYield plus the multiplier breakdown.
func EstimateYieldDetail(cropType, soilType string, soil *SoilTest) YieldEstimate {
	ref := Lookup(cropType)
	multiplier := 1.0
	var factors []string

	if soilMatches(ref, soilType) {
		multiplier += 0.10
		factors = append(factors, "preferred soil type")
	}

	if soil != nil && soil.PH != nil {
		ph := *soil.PH
		switch {
		case ref.OptimalPH.Contains(ph):
			multiplier += 0.15
			factors = append(factors, "pH in optimal range")
		case ph < ref.OptimalPH.Min-1.0 || ph > ref.OptimalPH.Max+1.0:
			multiplier -= 0.10
			factors = append(factors, "pH far outside optimal range")
		}
	}

	if soil != nil {
		if nutrientSufficient(soil.N, ref.Nutrients.N) {
			multiplier += 0.05
			factors = append(factors, "nitrogen sufficient")
		}
		if nutrientSufficient(soil.P, ref.Nutrients.P) {
			multiplier += 0.05
			factors = append(factors, "phosphorus sufficient")
		}
		if nutrientSufficient(soil.K, ref.Nutrients.K) {
			multiplier += 0.05
			factors = append(factors, "potassium sufficient")
		}
	}

	return YieldEstimate{
		Crop:       ref.Name,
		BaseYield:  ref.BaseYield,
		Multiplier: multiplier,
		Estimated:  round1(ref.BaseYield * multiplier),
		Factors:    factors,
	}
}

func soilMatches(ref CropReference, soilType string) bool {
	for _, s := range ref.PreferredSoils {
		if strings.EqualFold(s, strings.TrimSpace(soilType)) {
			return true
		}
	}
	return false
}

func nutrientSufficient(measured *float64, required float64) bool {
	return measured != nil && required > 0 && *measured >= nutrientThreshold*required
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
