package agronomy

// WaterRequirement classifies how much irrigation a crop needs.
type WaterRequirement string

const (
	WaterLow    WaterRequirement = "Low"
	WaterMedium WaterRequirement = "Medium"
	WaterHigh   WaterRequirement = "High"
)

// DemandLevel expresses market demand for a crop.
type DemandLevel string

const (
	DemandLow      DemandLevel = "Low"
	DemandMedium   DemandLevel = "Medium"
	DemandHigh     DemandLevel = "High"
	DemandVeryHigh DemandLevel = "Very High"
)

// ProfitLevel expresses relative profitability of growing a crop.
type ProfitLevel string

const (
	ProfitLow    ProfitLevel = "Low"
	ProfitMedium ProfitLevel = "Medium"
	ProfitHigh   ProfitLevel = "High"
)

// PHRange is the inclusive optimal soil pH window for a crop.
type PHRange struct {
	Min float64
	Max float64
}

// Contains reports whether ph lies within the range, bounds included.
func (r PHRange) Contains(ph float64) bool {
	return ph >= r.Min && ph <= r.Max
}

// NPK holds nutrient requirements in kg/hectare.
type NPK struct {
	N float64
	P float64
	K float64
}

// CropReference holds the static agronomic constants for one crop type.
// References are loaded once at init and never mutated.
type CropReference struct {
	Name             string
	BaseYield        float64 // tons per hectare before adjustments
	MarketPrice      float64 // rupees per quintal
	GrowthDuration   int     // days from planting to harvest
	WaterRequirement WaterRequirement
	PreferredSoils   []string
	OptimalPH        PHRange
	Nutrients        NPK
	Pests            []string
	Diseases         []string
	HarvestSeason    string
	MarketDemand     DemandLevel
	Profitability    ProfitLevel
}

// SoilTest is an optional per-field nutrient measurement. Nil fields mean
// the value was not measured and the corresponding adjustment is skipped.
type SoilTest struct {
	N  *float64 `json:"n,omitempty"`
	P  *float64 `json:"p,omitempty"`
	K  *float64 `json:"k,omitempty"`
	PH *float64 `json:"ph,omitempty"`
}

// defaultReference is returned for crop names the table does not know.
// A generic medium-profile crop so every lookup stays total.
var defaultReference = CropReference{
	Name:             "generic",
	BaseYield:        35,
	MarketPrice:      2000,
	GrowthDuration:   120,
	WaterRequirement: WaterMedium,
	PreferredSoils:   []string{"Loamy"},
	OptimalPH:        PHRange{Min: 6.0, Max: 7.5},
	Nutrients:        NPK{N: 100, P: 50, K: 50},
	Pests:            []string{"aphids", "cutworms"},
	Diseases:         []string{"root rot", "leaf spot"},
	HarvestSeason:    "Season dependent",
	MarketDemand:     DemandMedium,
	Profitability:    ProfitMedium,
}

var cropTable = map[string]CropReference{
	"wheat": {
		Name:             "wheat",
		BaseYield:        45,
		MarketPrice:      2125,
		GrowthDuration:   140,
		WaterRequirement: WaterMedium,
		PreferredSoils:   []string{"Loamy", "Clay Loam"},
		OptimalPH:        PHRange{Min: 6.0, Max: 7.5},
		Nutrients:        NPK{N: 120, P: 60, K: 40},
		Pests:            []string{"aphids", "armyworms", "termites"},
		Diseases:         []string{"rust", "loose smut", "karnal bunt"},
		HarvestSeason:    "Rabi (March-April)",
		MarketDemand:     DemandHigh,
		Profitability:    ProfitMedium,
	},
	"rice": {
		Name:             "rice",
		BaseYield:        40,
		MarketPrice:      2200,
		GrowthDuration:   125,
		WaterRequirement: WaterHigh,
		PreferredSoils:   []string{"Clay", "Clay Loam", "Silty"},
		OptimalPH:        PHRange{Min: 5.5, Max: 7.0},
		Nutrients:        NPK{N: 100, P: 50, K: 50},
		Pests:            []string{"stem borer", "brown planthopper", "leaf folder"},
		Diseases:         []string{"blast", "bacterial leaf blight", "sheath blight"},
		HarvestSeason:    "Kharif (September-November)",
		MarketDemand:     DemandVeryHigh,
		Profitability:    ProfitHigh,
	},
	"maize": {
		Name:             "maize",
		BaseYield:        55,
		MarketPrice:      1960,
		GrowthDuration:   100,
		WaterRequirement: WaterMedium,
		PreferredSoils:   []string{"Loamy", "Sandy Loam"},
		OptimalPH:        PHRange{Min: 5.8, Max: 7.0},
		Nutrients:        NPK{N: 135, P: 65, K: 50},
		Pests:            []string{"fall armyworm", "stem borer", "shoot fly"},
		Diseases:         []string{"turcicum leaf blight", "downy mildew"},
		HarvestSeason:    "Kharif (September-October)",
		MarketDemand:     DemandHigh,
		Profitability:    ProfitMedium,
	},
	"cotton": {
		Name:             "cotton",
		BaseYield:        20,
		MarketPrice:      6380,
		GrowthDuration:   170,
		WaterRequirement: WaterMedium,
		PreferredSoils:   []string{"Black", "Clay Loam"},
		OptimalPH:        PHRange{Min: 6.0, Max: 8.0},
		Nutrients:        NPK{N: 110, P: 55, K: 55},
		Pests:            []string{"bollworm", "whitefly", "jassids"},
		Diseases:         []string{"wilt", "leaf curl virus", "boll rot"},
		HarvestSeason:    "October-January",
		MarketDemand:     DemandHigh,
		Profitability:    ProfitHigh,
	},
	"sugarcane": {
		Name:             "sugarcane",
		BaseYield:        80,
		MarketPrice:      350,
		GrowthDuration:   330,
		WaterRequirement: WaterHigh,
		PreferredSoils:   []string{"Loamy", "Clay Loam"},
		OptimalPH:        PHRange{Min: 6.0, Max: 7.5},
		Nutrients:        NPK{N: 150, P: 60, K: 80},
		Pests:            []string{"early shoot borer", "top borer", "pyrilla"},
		Diseases:         []string{"red rot", "smut", "grassy shoot"},
		HarvestSeason:    "December-March",
		MarketDemand:     DemandHigh,
		Profitability:    ProfitMedium,
	},
	"soybean": {
		Name:             "soybean",
		BaseYield:        25,
		MarketPrice:      4300,
		GrowthDuration:   100,
		WaterRequirement: WaterMedium,
		PreferredSoils:   []string{"Loamy", "Sandy Loam", "Black"},
		OptimalPH:        PHRange{Min: 6.0, Max: 7.5},
		Nutrients:        NPK{N: 30, P: 60, K: 40},
		Pests:            []string{"girdle beetle", "stem fly", "semilooper"},
		Diseases:         []string{"yellow mosaic virus", "rust", "charcoal rot"},
		HarvestSeason:    "Kharif (October)",
		MarketDemand:     DemandHigh,
		Profitability:    ProfitHigh,
	},
	"potato": {
		Name:             "potato",
		BaseYield:        30,
		MarketPrice:      1250,
		GrowthDuration:   90,
		WaterRequirement: WaterMedium,
		PreferredSoils:   []string{"Sandy Loam", "Loamy"},
		OptimalPH:        PHRange{Min: 5.2, Max: 6.4},
		Nutrients:        NPK{N: 120, P: 80, K: 100},
		Pests:            []string{"aphids", "potato tuber moth", "white grub"},
		Diseases:         []string{"late blight", "early blight", "black scurf"},
		HarvestSeason:    "Rabi (January-March)",
		MarketDemand:     DemandVeryHigh,
		Profitability:    ProfitMedium,
	},
	"tomato": {
		Name:             "tomato",
		BaseYield:        50,
		MarketPrice:      1800,
		GrowthDuration:   110,
		WaterRequirement: WaterMedium,
		PreferredSoils:   []string{"Loamy", "Sandy Loam"},
		OptimalPH:        PHRange{Min: 6.0, Max: 7.0},
		Nutrients:        NPK{N: 100, P: 60, K: 60},
		Pests:            []string{"fruit borer", "whitefly", "leaf miner"},
		Diseases:         []string{"early blight", "leaf curl virus", "bacterial wilt"},
		HarvestSeason:    "Year round (peak December-February)",
		MarketDemand:     DemandVeryHigh,
		Profitability:    ProfitHigh,
	},
	"mustard": {
		Name:             "mustard",
		BaseYield:        15,
		MarketPrice:      5450,
		GrowthDuration:   115,
		WaterRequirement: WaterLow,
		PreferredSoils:   []string{"Loamy", "Sandy Loam"},
		OptimalPH:        PHRange{Min: 6.0, Max: 7.5},
		Nutrients:        NPK{N: 80, P: 40, K: 40},
		Pests:            []string{"mustard aphid", "painted bug", "sawfly"},
		Diseases:         []string{"white rust", "alternaria blight", "downy mildew"},
		HarvestSeason:    "Rabi (February-March)",
		MarketDemand:     DemandMedium,
		Profitability:    ProfitMedium,
	},
	"groundnut": {
		Name:             "groundnut",
		BaseYield:        22,
		MarketPrice:      5850,
		GrowthDuration:   110,
		WaterRequirement: WaterLow,
		PreferredSoils:   []string{"Sandy Loam", "Sandy", "Red"},
		OptimalPH:        PHRange{Min: 6.0, Max: 7.0},
		Nutrients:        NPK{N: 25, P: 50, K: 45},
		Pests:            []string{"leaf miner", "white grub", "red hairy caterpillar"},
		Diseases:         []string{"tikka leaf spot", "collar rot", "bud necrosis"},
		HarvestSeason:    "Kharif (October-November)",
		MarketDemand:     DemandHigh,
		Profitability:    ProfitHigh,
	},
}

// Crops returns the known crop names in no particular order.
func Crops() []string {
	out := make([]string, 0, len(cropTable))
	for name := range cropTable {
		out = append(out, name)
	}
	return out
}

// DefaultReference returns the fallback reference used for unknown crops.
func DefaultReference() CropReference {
	return defaultReference
}
