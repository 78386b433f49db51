package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	StoreDriver            string // bolt | sqlite | memory
	StorePath              string
	LogFile                string
	AdminEmail             string
	AdminPassword          string
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
}

func Load() Config {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	driver := os.Getenv("STORE_DRIVER")
	if driver == "" {
		driver = "bolt"
	}
	path := os.Getenv("STORE_PATH")
	if path == "" {
		path = "pygextintores.db" // store file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./pygextintores.log"
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@pygextintores.cl"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	cfg := Config{
		Port:                   port,
		StoreDriver:            driver,
		StorePath:              path,
		LogFile:                logFile,
		AdminEmail:             adminEmail,
		AdminPassword:          adminPassword,
		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	}
	log.Printf("[config] PORT=%s STORE_DRIVER=%s STORE_PATH=%s LOG_FILE=%s", cfg.Port, cfg.StoreDriver, cfg.StorePath, cfg.LogFile)
	return cfg
}
