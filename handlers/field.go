package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmsight/config"
	"farmsight/middleware"
	"farmsight/models"
	"farmsight/pkg/agronomy"
	"farmsight/utils"
)

func GetAllFields(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r)
	if ownerID == "" {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var fields []models.FieldProfile
	if err := config.DB.
		Preload("Plantings").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&fields).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fields)
}

func CreateField(w http.ResponseWriter, r *http.Request) {
	var field models.FieldProfile
	if err := json.NewDecoder(r.Body).Decode(&field); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user := middleware.GetUser(r)
	field.OwnerID = user.ID

	// A supplied boundary can stand in for a missing size.
	if field.SizeHectares == 0 && len(field.Boundary) > 0 {
		if ha, err := utils.BoundaryAreaHectares(field.Boundary); err == nil {
			field.SizeHectares = ha
		}
	}

	if err := field.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&field).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(field)
}

func GetField(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ownerID := middleware.GetUserID(r)

	var field models.FieldProfile
	if err := config.DB.
		Preload("Plantings").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&field).Error; err != nil {
		http.Error(w, "field not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(field)
}

func UpdateField(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ownerID := middleware.GetUserID(r)

	var field models.FieldProfile
	if err := config.DB.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&field).Error; err != nil {
		http.Error(w, "field not found", http.StatusNotFound)
		return
	}

	if err := applyFieldUpdate(r, &field); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := field.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := config.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(&field).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(field)
}

// applyFieldUpdate decodes the request body over the stored field while
// keeping its identity columns fixed. A body carrying a different "id"
// or "ownerId" must not move the row or reassign ownership.
func applyFieldUpdate(r *http.Request, field *models.FieldProfile) error {
	id, ownerID := field.ID, field.OwnerID
	if err := json.NewDecoder(r.Body).Decode(field); err != nil {
		return err
	}
	field.ID = id
	field.OwnerID = ownerID
	return nil
}

func DeleteField(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ownerID := middleware.GetUserID(r)

	result := config.DB.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.FieldProfile{})
	if result.Error != nil {
		http.Error(w, "failed to delete field", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "field not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func BatchFields(w http.ResponseWriter, r *http.Request) {
	var batch []models.FieldProfile
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	user := middleware.GetUser(r)

	for i := range batch {
		batch[i].OwnerID = user.ID
		if err := batch[i].Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if len(batch) == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := config.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&batch).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// fieldInsight pairs a planting with its derived metrics.
type fieldInsight struct {
	Planting        models.CropPlanting      `json:"planting"`
	Estimate        agronomy.YieldEstimate   `json:"estimate"`
	Recommendations agronomy.Recommendations `json:"recommendations"`
	Market          agronomy.MarketInsight   `json:"market"`
}

// GetFieldInsights runs the estimator over every planting of a stored
// field profile.
func GetFieldInsights(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ownerID := middleware.GetUserID(r)

	var field models.FieldProfile
	if err := config.DB.
		Preload("Plantings").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&field).Error; err != nil {
		http.Error(w, "field not found", http.StatusNotFound)
		return
	}

	insights := make([]fieldInsight, 0, len(field.Plantings))
	for _, p := range field.Plantings {
		var soil *agronomy.SoilTest
		if p.HasSoilTest() {
			soil = &agronomy.SoilTest{N: p.SoilN, P: p.SoilP, K: p.SoilK, PH: p.SoilPH}
		}
		insights = append(insights, fieldInsight{
			Planting:        p,
			Estimate:        agronomy.EstimateYieldDetail(p.CropType, field.SoilType, soil),
			Recommendations: agronomy.Recommend(p.CropType, field.SoilType, soil),
			Market:          agronomy.MarketInsights(p.CropType),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"fieldId":   field.ID,
		"fieldName": field.Name,
		"soilType":  field.SoilType,
		"insights":  insights,
	})
}
