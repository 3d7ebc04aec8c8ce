package agronomy

// WeatherSnapshot is the current-conditions input to the weather advisor.
// Temperature in °C, humidity in %, rainfall in mm, wind speed in km/h.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	WindSpeed   float64 `json:"windSpeed"`
	Condition   string  `json:"condition"`
}

// WeatherAdvice derives field-operation advice from current conditions.
// Deterministic; each band contributes at most one line, and the two
// general lines always close the list.
func WeatherAdvice(ws WeatherSnapshot) []string {
	var advice []string

	switch {
	case ws.Temperature > 35:
		advice = append(advice, "High temperature alert: ensure adequate irrigation and consider shade nets")
	case ws.Temperature < 15:
		advice = append(advice, "Low temperature warning: protect sensitive crops from cold damage")
	case ws.Temperature >= 20 && ws.Temperature <= 30:
		advice = append(advice, "Temperature is in the optimal range for most crops")
	}

	switch {
	case ws.Humidity > 80:
		advice = append(advice, "High humidity: monitor for fungal diseases and ensure good ventilation")
	case ws.Humidity < 40:
		advice = append(advice, "Low humidity: increase irrigation frequency and consider mulching")
	default:
		advice = append(advice, "Humidity levels are favorable for crop growth")
	}

	switch {
	case ws.Rainfall > 25:
		advice = append(advice, "Heavy rainfall expected: ensure proper drainage and postpone spraying")
	case ws.Rainfall > 10:
		advice = append(advice, "Moderate rainfall: good for crop growth, monitor soil moisture")
	case ws.Rainfall < 2:
		advice = append(advice, "Dry conditions: plan the irrigation schedule accordingly")
	}

	switch ws.Condition {
	case "Clear", "Sunny":
		advice = append(advice, "Clear weather: ideal for field operations and spraying")
	case "Light Rain":
		advice = append(advice, "Light rain: beneficial for crops, delay chemical applications")
	case "Cloudy":
		advice = append(advice, "Cloudy conditions: reduced evaporation, adjust irrigation accordingly")
	}

	advice = append(advice,
		"Consider the seasonal crop calendar for planting and harvesting",
		"Monitor soil moisture levels regularly")
	return advice
}
