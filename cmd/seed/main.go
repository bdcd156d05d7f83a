package main

import (
	"log"
	"os"
	"time"

	"ai-chatbot-be/internal/model"
	"ai-chatbot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding initial data...")

	seedAdminUser(db)
	seedPolicies(db)

	color.Cyan("Seeding completed.")
}

func seedAdminUser(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@localhost"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		color.Yellow("SEED_ADMIN_PASSWORD not set, using the default. Change it before going live.")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin user '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash admin password: %v", err)
		return
	}
	hashStr := string(hash)

	admin := model.User{
		Id:            uuid.New(),
		Uid:           uuid.New().String(),
		Email:         email,
		Name:          "Administrator",
		PasswordHash:  &hashStr,
		Provider:      "password",
		Role:          "admin",
		Status:        "active",
		EmailVerified: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		color.Red("Failed to create admin user: %v", err)
		return
	}
	color.Green("Created admin user: %s", email)
}

func seedPolicies(db *gorm.DB) {
	now := time.Now()
	policies := []model.Policy{
		{
			Id:            uuid.New(),
			Title:         "Terms of Service",
			Type:          "terms",
			Slug:          "terms-of-service",
			Content:       "These terms govern your use of the service.",
			EffectiveDate: &now,
			Author:        "system",
		},
		{
			Id:            uuid.New(),
			Title:         "Privacy Policy",
			Type:          "privacy",
			Slug:          "privacy-policy",
			Content:       "This policy describes what data we collect and how we use it.",
			EffectiveDate: &now,
			Author:        "system",
		},
	}

	for _, p := range policies {
		var existing model.Policy
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			color.Yellow("Policy '%s' already exists, skipping...", p.Slug)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			color.Red("Failed to create policy '%s': %v", p.Slug, err)
		} else {
			color.Green("Created policy: %s", p.Slug)
		}
	}
}
