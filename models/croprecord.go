package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CropRecord is one row of historical crop data, entered manually or
// ingested from a CSV upload.
type CropRecord struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FieldName         string     `gorm:"size:100;not null" json:"fieldName"`
	State             string     `gorm:"size:100;index;not null" json:"state"`
	District          string     `gorm:"size:100;index" json:"district,omitempty"`
	CropType          string     `gorm:"size:50;index;not null" json:"cropType"`
	YieldPerHectare   float64    `json:"yieldPerHectare"`
	FieldSizeHectares float64    `json:"fieldSizeHectares"`
	DataSource        string     `gorm:"size:50;default:manual" json:"dataSource"`
	UploadBatchID     *uuid.UUID `gorm:"type:uuid;index" json:"uploadBatchId,omitempty"`
	UploadedBy        uuid.UUID  `gorm:"type:uuid;index" json:"uploadedBy"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// UploadBatch records the outcome of one CSV ingestion run.
type UploadBatch struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Filename    string    `gorm:"size:255;not null" json:"filename"`
	FileSize    int64     `json:"fileSize"`
	TotalRows   int       `json:"totalRows"`
	ValidRows   int       `json:"validRows"`
	InvalidRows int       `json:"invalidRows"`
	Status      string    `gorm:"size:50;default:completed" json:"status"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (b *UploadBatch) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
