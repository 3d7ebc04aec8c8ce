package agronomy

import "math"

// priceBand is the fixed spread applied around the reference price.
const priceBand = 0.15

// PriceRange is the expected trading window around the current price.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// MarketInsight summarizes static market data for a crop.
type MarketInsight struct {
	Crop          string      `json:"crop"`
	CurrentPrice  float64     `json:"currentPrice"` // rupees per quintal
	PriceRange    PriceRange  `json:"priceRange"`
	Demand        DemandLevel `json:"demand"`
	Profitability ProfitLevel `json:"profitability"`
	HarvestSeason string      `json:"harvestSeason"`
	Trend         string      `json:"trend"`
}

// MarketInsights reads price, demand and profitability off the crop
// reference with a fixed ±15% band. No historical data is consulted;
// the trend is a constant.
func MarketInsights(cropType string) MarketInsight {
	ref := Lookup(cropType)
	return MarketInsight{
		Crop:         ref.Name,
		CurrentPrice: ref.MarketPrice,
		PriceRange: PriceRange{
			Min: int(math.Round(ref.MarketPrice * (1 - priceBand))),
			Max: int(math.Round(ref.MarketPrice * (1 + priceBand))),
		},
		Demand:        ref.MarketDemand,
		Profitability: ref.Profitability,
		HarvestSeason: ref.HarvestSeason,
		Trend:         "stable",
	}
}
