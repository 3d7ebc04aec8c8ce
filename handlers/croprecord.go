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
)

// recordQuery applies the list filters to a crop-record query.
func recordQuery(db *gorm.DB, p models.ListParams) *gorm.DB {
	q := db.Model(&models.CropRecord{})
	if p.CropType != "" {
		q = q.Where("crop_type ILIKE ?", "%"+p.CropType+"%")
	}
	if p.State != "" {
		q = q.Where("state ILIKE ?", "%"+p.State+"%")
	}
	if p.District != "" {
		q = q.Where("district ILIKE ?", "%"+p.District+"%")
	}
	return q
}

func GetAllCropRecords(w http.ResponseWriter, r *http.Request) {
	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var records []models.CropRecord
	if err := recordQuery(config.DB, params).
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&records).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var total int64
	if err := recordQuery(config.DB, params).Count(&total).Error; err != nil {
		http.Error(w, "db count error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
		"data":  records,
	})
}

func CreateCropRecord(w http.ResponseWriter, r *http.Request) {
	var record models.CropRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if record.FieldName == "" || record.State == "" || record.CropType == "" {
		http.Error(w, "field_name, state and crop_type are required", http.StatusBadRequest)
		return
	}
	if record.YieldPerHectare < 0 || record.FieldSizeHectares < 0 {
		http.Error(w, "yield and field size must not be negative", http.StatusBadRequest)
		return
	}

	user := middleware.GetUser(r)
	record.UploadedBy = user.ID
	record.DataSource = "manual"

	if err := config.DB.Create(&record).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func GetCropRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var record models.CropRecord
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func UpdateCropRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var record models.CropRecord
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	if err := applyRecordUpdate(r, &record); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := config.DB.Save(&record).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// applyRecordUpdate decodes the request body over the stored record while
// keeping its identity columns fixed, so a body carrying a different "id"
// cannot redirect the save to another row.
func applyRecordUpdate(r *http.Request, record *models.CropRecord) error {
	id, uploadedBy := record.ID, record.UploadedBy
	if err := json.NewDecoder(r.Body).Decode(record); err != nil {
		return err
	}
	record.ID = id
	record.UploadedBy = uploadedBy
	return nil
}

func DeleteCropRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Where("id = ?", id).Delete(&models.CropRecord{})
	if result.Error != nil {
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func BatchCropRecords(w http.ResponseWriter, r *http.Request) {
	var batch []models.CropRecord
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	user := middleware.GetUser(r)

	for i := range batch {
		batch[i].UploadedBy = user.ID
		if batch[i].DataSource == "" {
			batch[i].DataSource = "manual"
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
