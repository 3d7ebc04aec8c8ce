package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"farmsight/models"
)

// SeedAdminUser creates the bootstrap admin account if no admin exists.
// Credentials come from ADMIN_EMAIL/ADMIN_PHONE/ADMIN_PASSWORD; skipped
// when they are not set.
func SeedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	phone := os.Getenv("ADMIN_PHONE")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || phone == "" || password == "" {
		log.Println("Admin seed credentials not configured, skipping admin seeding")
		return
	}

	var existing models.User
	err := DB.Where("role = ?", "admin").First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists, skipping admin seeding")
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Warning: admin seed lookup failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: could not hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Warning: admin seeding failed: %v", err)
		return
	}
	log.Println("Seeded admin user", email)
}
