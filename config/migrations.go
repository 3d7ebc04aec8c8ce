package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"farmsight/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250610_create_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{})
			},
		},
		{
			ID: "20250610_create_field_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.FieldProfile{}, &models.CropPlanting{})
			},
		},
		{
			ID: "20250624_create_crop_record_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.CropRecord{}, &models.UploadBatch{})
			},
		},
		{
			ID: "20250711_add_district_index",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(
					"CREATE INDEX IF NOT EXISTS idx_crop_records_state_crop ON crop_records (state, crop_type)",
				).Error
			},
		},
	})

	return m.Migrate()
}
