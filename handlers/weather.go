package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gorilla/mux"

	"farmsight/pkg/agronomy"
)

var weatherHTTP = &http.Client{Timeout: 10 * time.Second}

var weatherConditions = []string{"Clear", "Partly Cloudy", "Cloudy", "Light Rain", "Sunny"}

type forecastDay struct {
	Day            int     `json:"day"`
	Date           string  `json:"date,omitempty"`
	TemperatureMax float64 `json:"temperatureMax"`
	TemperatureMin float64 `json:"temperatureMin"`
	Humidity       float64 `json:"humidity"`
	Rainfall       float64 `json:"rainfall"`
	Condition      string  `json:"condition"`
}

type weatherReport struct {
	Location string `json:"location"`
	agronomy.WeatherSnapshot
	Advice     []string      `json:"agriculturalAdvice"`
	Forecast   []forecastDay `json:"forecast"`
	DataSource string        `json:"dataSource"`
}

// GetWeather returns current conditions, a 7-day outlook and derived
// field advice for a location. A configured WEATHER_API_KEY switches to
// live WeatherAPI.com data; otherwise (and on any upstream failure) a
// generated sample keeps the endpoint usable without credentials.
func GetWeather(w http.ResponseWriter, r *http.Request) {
	location := mux.Vars(r)["location"]

	var report weatherReport
	if os.Getenv("WEATHER_API_KEY") != "" {
		live, err := fetchLiveWeather(r, location)
		if err != nil {
			log.Printf("[WEATHER] live fetch for %q failed: %v, using generated data", location, err)
		} else {
			report = live
		}
	}
	if report.DataSource == "" {
		report = mockWeather(location)
	}

	report.Location = location
	report.Advice = agronomy.WeatherAdvice(report.WeatherSnapshot)

	writeJSON(w, http.StatusOK, report)
}

// mockWeather fabricates plausible in-season conditions so the dashboard
// works without an API key.
func mockWeather(location string) weatherReport {
	report := weatherReport{
		WeatherSnapshot: agronomy.WeatherSnapshot{
			Temperature: round1f(20 + rand.Float64()*20),
			Humidity:    round1f(40 + rand.Float64()*50),
			Rainfall:    round1f(rand.Float64() * 50),
			WindSpeed:   round1f(5 + rand.Float64()*15),
			Condition:   weatherConditions[rand.Intn(len(weatherConditions))],
		},
		DataSource: "mock",
	}
	for day := 1; day <= 7; day++ {
		report.Forecast = append(report.Forecast, forecastDay{
			Day:            day,
			TemperatureMax: round1f(report.Temperature + rand.Float64()*10 - 5),
			TemperatureMin: round1f(report.Temperature - 5 - rand.Float64()*10),
			Humidity:       round1f(40 + rand.Float64()*50),
			Rainfall:       round1f(rand.Float64() * 30),
			Condition:      weatherConditions[rand.Intn(len(weatherConditions))],
		})
	}
	return report
}

// weatherAPIForecast mirrors the parts of the WeatherAPI.com forecast
// response the report needs.
type weatherAPIForecast struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  float64 `json:"humidity"`
		PrecipMM  float64 `json:"precip_mm"`
		WindKPH   float64 `json:"wind_kph"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC      float64 `json:"maxtemp_c"`
				MinTempC      float64 `json:"mintemp_c"`
				AvgHumidity   float64 `json:"avghumidity"`
				TotalPrecipMM float64 `json:"totalprecip_mm"`
				Condition     struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func fetchLiveWeather(r *http.Request, location string) (weatherReport, error) {
	endpoint := fmt.Sprintf("http://api.weatherapi.com/v1/forecast.json?key=%s&q=%s&days=7&aqi=no&alerts=no",
		url.QueryEscape(os.Getenv("WEATHER_API_KEY")), url.QueryEscape(location))

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		return weatherReport{}, err
	}
	resp, err := weatherHTTP.Do(req)
	if err != nil {
		return weatherReport{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return weatherReport{}, fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	var payload weatherAPIForecast
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weatherReport{}, err
	}

	report := weatherReport{
		WeatherSnapshot: agronomy.WeatherSnapshot{
			Temperature: payload.Current.TempC,
			Humidity:    payload.Current.Humidity,
			Rainfall:    payload.Current.PrecipMM,
			WindSpeed:   payload.Current.WindKPH,
			Condition:   payload.Current.Condition.Text,
		},
		DataSource: "weatherapi",
	}
	for i, fd := range payload.Forecast.ForecastDay {
		report.Forecast = append(report.Forecast, forecastDay{
			Day:            i + 1,
			Date:           fd.Date,
			TemperatureMax: fd.Day.MaxTempC,
			TemperatureMin: fd.Day.MinTempC,
			Humidity:       fd.Day.AvgHumidity,
			Rainfall:       fd.Day.TotalPrecipMM,
			Condition:      fd.Day.Condition.Text,
		})
	}
	return report, nil
}

func round1f(v float64) float64 {
	return math.Round(v*10) / 10
}
