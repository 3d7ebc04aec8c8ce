package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func TestMockWeatherBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		report := mockWeather("Ludhiana")
		if report.Temperature < 20 || report.Temperature > 40 {
			t.Fatalf("temperature %v out of 20-40 band", report.Temperature)
		}
		if report.Humidity < 40 || report.Humidity > 90 {
			t.Fatalf("humidity %v out of 40-90 band", report.Humidity)
		}
		if report.Rainfall < 0 || report.Rainfall > 50 {
			t.Fatalf("rainfall %v out of 0-50 band", report.Rainfall)
		}
		if report.WindSpeed < 5 || report.WindSpeed > 20 {
			t.Fatalf("wind speed %v out of 5-20 band", report.WindSpeed)
		}
		if len(report.Forecast) != 7 {
			t.Fatalf("forecast has %d days, want 7", len(report.Forecast))
		}
		if report.DataSource != "mock" {
			t.Fatalf("data source = %q", report.DataSource)
		}
	}
}

func TestGetWeatherWithoutAPIKey(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "")

	router := mux.NewRouter()
	router.HandleFunc("/dashboard/weather/{location}", GetWeather).Methods("GET")

	r := httptest.NewRequest("GET", "/dashboard/weather/Ludhiana", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var report weatherReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if report.Location != "Ludhiana" {
		t.Errorf("location = %q", report.Location)
	}
	if report.DataSource != "mock" {
		t.Errorf("data source = %q, want mock", report.DataSource)
	}
	if len(report.Advice) < 3 {
		t.Errorf("advice too short: %v", report.Advice)
	}
}
