package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FieldProfile is one physical farm field: its soil, irrigation setup and
// the crops planted on it. Owned by exactly one user.
type FieldProfile struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID           uuid.UUID      `gorm:"type:uuid;index;not null" json:"ownerId"`
	Owner             *User          `gorm:"foreignKey:OwnerID" json:"-"`
	Name              string         `gorm:"size:100;not null" json:"name"`
	SizeHectares      float64        `gorm:"not null" json:"sizeHectares"`
	SoilType          string         `gorm:"size:50;not null" json:"soilType"`
	IrrigationMethod  string         `gorm:"size:50" json:"irrigationMethod,omitempty"`
	WaterAvailability string         `gorm:"size:50" json:"waterAvailability,omitempty"`
	Boundary          datatypes.JSON `gorm:"type:jsonb" json:"boundary,omitempty"` // GeoJSON polygon
	Photos            datatypes.JSON `gorm:"type:jsonb" json:"photos,omitempty"`
	Plantings         []CropPlanting `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"plantings,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CropPlanting is one crop on a field, with its optional soil test.
// Nullable N/P/K/pH columns mean "not measured".
type CropPlanting struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FieldID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"fieldId"`
	CropType     string         `gorm:"size:50;not null" json:"cropType"`
	PlantingDate JSONTime       `gorm:"not null" json:"plantingDate"`
	Fertilizers  pq.StringArray `gorm:"type:text[]" json:"fertilizers,omitempty"`
	Pesticides   pq.StringArray `gorm:"type:text[]" json:"pesticides,omitempty"`
	PreviousCrop *string        `gorm:"size:50" json:"previousCrop,omitempty"`

	SoilN  *float64 `gorm:"column:soil_n" json:"soilN,omitempty"`
	SoilP  *float64 `gorm:"column:soil_p" json:"soilP,omitempty"`
	SoilK  *float64 `gorm:"column:soil_k" json:"soilK,omitempty"`
	SoilPH *float64 `gorm:"column:soil_ph" json:"soilPh,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// HasSoilTest reports whether any soil measurement was recorded.
func (p *CropPlanting) HasSoilTest() bool {
	return p.SoilN != nil || p.SoilP != nil || p.SoilK != nil || p.SoilPH != nil
}

// Validate enforces the form-level invariants before persisting.
func (f *FieldProfile) Validate() error {
	if f.Name == "" {
		return errors.New("field name is required")
	}
	if f.SizeHectares <= 0 {
		return errors.New("field size must be greater than zero")
	}
	if f.SoilType == "" {
		return errors.New("soil type is required")
	}
	for i := range f.Plantings {
		if f.Plantings[i].CropType == "" {
			return errors.New("every planting needs a crop type")
		}
	}
	return nil
}
