package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"safarihub/internal/auth"
	"safarihub/internal/config"
	"safarihub/internal/db"
	apperrors "safarihub/internal/errors"
	"safarihub/internal/model"
	"safarihub/internal/repository"
	"safarihub/internal/service"
)

// Seeds a demo admin and a handful of catalog rows for local development.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.Tour{},
		&model.CarRental{},
		&model.TourPackage{},
		&model.GalleryItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	adminRepo := repository.NewAdminRepository(gormDB)
	adminService := service.NewAdminService(adminRepo, auth.NewJWTService(cfg.JWTSecret), true)
	if _, err := adminService.Register(ctx, "admin@safarihub.local", "changeme123"); err != nil {
		if err == apperrors.ErrEmailTaken {
			log.Println("Demo admin already present, skipping")
		} else {
			log.Fatalf("Failed to seed admin: %v", err)
		}
	} else {
		log.Println("Seeded demo admin admin@safarihub.local")
	}

	tours := []model.Tour{
		{
			Title:           "Masai Mara Classic",
			Description:     "Three days tracking the great migration across the Mara plains.",
			Duration:        "3 days",
			Price:           decimal.NewFromInt(450),
			Location:        "Masai Mara",
			Difficulty:      "Easy",
			MaxParticipants: 12,
			Includes:        datatypes.NewJSONSlice([]string{"Park fees", "Game drives", "Full board"}),
			Image:           "https://images.safarihub.local/mara.jpg",
		},
		{
			Title:           "Mount Kenya Trek",
			Description:     "Five day ascent of Point Lenana via the Sirimon route.",
			Duration:        "5 days",
			Price:           decimal.NewFromInt(780),
			Location:        "Mount Kenya",
			Difficulty:      "Hard",
			MaxParticipants: 8,
			Includes:        datatypes.NewJSONSlice([]string{"Guide", "Porters", "Mountain huts"}),
			Image:           "https://images.safarihub.local/mtkenya.jpg",
		},
	}
	for i := range tours {
		if err := gormDB.WithContext(ctx).Create(&tours[i]).Error; err != nil {
			log.Printf("Skipping tour %q: %v", tours[i].Title, err)
		}
	}

	rentals := []model.CarRental{
		{
			VehicleName: "Land Cruiser 76",
			Description: "Pop-top safari cruiser with fridge and inverter.",
			VehicleType: "Jeep",
			PricePerDay: decimal.NewFromInt(120),
			Capacity:    7,
			Features:    datatypes.NewJSONSlice([]string{"4x4", "Pop-top roof", "Fridge"}),
			Image:       "/uploads/seed-cruiser.jpg",
		},
	}
	for i := range rentals {
		if err := gormDB.WithContext(ctx).Create(&rentals[i]).Error; err != nil {
			log.Printf("Skipping rental %q: %v", rentals[i].VehicleName, err)
		}
	}

	packages := []model.TourPackage{
		{
			Name:         "Coast and Crater",
			Description:  "Ngorongoro crater plus three nights in Diani.",
			Duration:     "7 days",
			Price:        decimal.NewFromInt(1650),
			Destinations: datatypes.NewJSONSlice([]string{"Ngorongoro", "Diani"}),
			Includes:     datatypes.NewJSONSlice([]string{"Flights", "Lodging", "Transfers"}),
			Highlights:   datatypes.NewJSONSlice([]string{"Crater game drive", "Dhow sunset cruise"}),
			Image:        "/uploads/seed-coast.jpg",
		},
	}
	for i := range packages {
		if err := gormDB.WithContext(ctx).Create(&packages[i]).Error; err != nil {
			log.Printf("Skipping package %q: %v", packages[i].Name, err)
		}
	}

	gallery := []model.GalleryItem{
		{
			Title:       "Sunrise over the Mara",
			Type:        "Safari",
			Description: "Balloon launch at first light.",
			Image:       "/uploads/seed-sunrise.jpg",
		},
	}
	for i := range gallery {
		if err := gormDB.WithContext(ctx).Create(&gallery[i]).Error; err != nil {
			log.Printf("Skipping gallery item %q: %v", gallery[i].Title, err)
		}
	}

	log.Println("Seed completed")
}
