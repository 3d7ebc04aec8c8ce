package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"farmsight/config"
	"farmsight/models"
	"farmsight/pkg/agronomy"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// soilTestFromQuery builds an optional soil test from n/p/k/ph query
// parameters. Absent parameters stay nil so the estimator skips them.
func soilTestFromQuery(r *http.Request) (*agronomy.SoilTest, error) {
	var test agronomy.SoilTest
	any := false
	for _, q := range []struct {
		key  string
		dest **float64
	}{
		{"n", &test.N},
		{"p", &test.P},
		{"k", &test.K},
		{"ph", &test.PH},
	} {
		raw := r.URL.Query().Get(q.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		*q.dest = &v
		any = true
	}
	if !any {
		return nil, nil
	}
	return &test, nil
}

// GetYieldEstimate returns the heuristic yield estimate for
// ?crop=&soil=&n=&p=&k=&ph=. Only crop is required.
func GetYieldEstimate(w http.ResponseWriter, r *http.Request) {
	crop := r.URL.Query().Get("crop")
	if crop == "" {
		http.Error(w, "crop query parameter is required", http.StatusBadRequest)
		return
	}
	test, err := soilTestFromQuery(r)
	if err != nil {
		http.Error(w, "soil parameters must be numeric", http.StatusBadRequest)
		return
	}
	estimate := agronomy.EstimateYieldDetail(crop, r.URL.Query().Get("soil"), test)
	writeJSON(w, http.StatusOK, estimate)
}

// GetRecommendations returns irrigation, fertilizer and pest-control advice
// for ?crop=&soil=&n=&p=&k=&ph=.
func GetRecommendations(w http.ResponseWriter, r *http.Request) {
	crop := r.URL.Query().Get("crop")
	if crop == "" {
		http.Error(w, "crop query parameter is required", http.StatusBadRequest)
		return
	}
	test, err := soilTestFromQuery(r)
	if err != nil {
		http.Error(w, "soil parameters must be numeric", http.StatusBadRequest)
		return
	}
	recs := agronomy.Recommend(crop, r.URL.Query().Get("soil"), test)
	writeJSON(w, http.StatusOK, recs)
}

// GetMarketInsight returns price band, demand and profitability for one crop.
func GetMarketInsight(w http.ResponseWriter, r *http.Request) {
	crop := mux.Vars(r)["crop"]
	insight := agronomy.MarketInsights(crop)
	writeJSON(w, http.StatusOK, insight)
}

// GetCropStatistics aggregates the crop-record dataset: record and hectare
// totals, yield spread, and the leading crops and states by record count.
func GetCropStatistics(w http.ResponseWriter, r *http.Request) {
	var stats models.CropStatistics
	row := config.DB.Model(&models.CropRecord{}).
		Select("COUNT(*), " +
			"COUNT(DISTINCT crop_type), " +
			"COUNT(DISTINCT state), " +
			"COALESCE(AVG(yield_per_hectare), 0), " +
			"COALESCE(MIN(yield_per_hectare), 0), " +
			"COALESCE(MAX(yield_per_hectare), 0), " +
			"COALESCE(SUM(field_size_hectares), 0)").
		Row()
	if err := row.Scan(&stats.TotalRecords, &stats.UniqueCrops, &stats.UniqueStates,
		&stats.AvgYield, &stats.MinYield, &stats.MaxYield, &stats.TotalAreaHa); err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := config.DB.Model(&models.CropRecord{}).
		Select("crop_type, AVG(yield_per_hectare) AS avg_yield, " +
			"SUM(field_size_hectares) AS total_area_ha, COUNT(*) AS record_count").
		Group("crop_type").
		Order("avg_yield DESC").
		Limit(5).
		Scan(&stats.TopCrops).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := config.DB.Model(&models.CropRecord{}).
		Select("state, AVG(yield_per_hectare) AS avg_yield, " +
			"SUM(field_size_hectares) AS total_area_ha, COUNT(*) AS record_count").
		Group("state").
		Order("total_area_ha DESC").
		Limit(5).
		Scan(&stats.TopStates).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// HealthCheck reports service and database liveness.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	dbStatus := "ok"
	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   status,
		"database": dbStatus,
	})
}
