package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"farmsight/config"
	"farmsight/models"
)

// GetAllUsers lists registered users for administrators.
func GetAllUsers(w http.ResponseWriter, r *http.Request) {
	params, err := models.ParseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var users []models.User
	if err := config.DB.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&users).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var total int64
	if err := config.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		http.Error(w, "db count error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
		"data":  users,
	})
}

// SetUserActive toggles a user's active flag. Deactivated users can no
// longer log in.
func SetUserActive(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := config.DB.Model(&models.User{}).
		Where("id = ?", id).
		Update("is_active", payload.IsActive)
	if result.Error != nil {
		http.Error(w, "db error: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
