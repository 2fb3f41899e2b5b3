package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	EmailSender string
	Password    string // SMTP Password

	MediaCloudName    string // Cloudinary cloud name
	MediaUploadPreset string // Unsigned upload preset
	MediaUploadURL    string // Override for the media host base URL
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		Env:       getEnv("APP_ENV", "development"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "skillforge"),
		DBPort:     getEnv("DB_PORT", "5432"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("EMAIL_PASSWORD", ""),

		MediaCloudName:    getEnv("MEDIA_CLOUD_NAME", ""),
		MediaUploadPreset: getEnv("MEDIA_UPLOAD_PRESET", ""),
		MediaUploadURL:    getEnv("MEDIA_UPLOAD_URL", "https://api.cloudinary.com/v1_1"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.MediaCloudName == "" {
		log.Println("Warning: MEDIA_CLOUD_NAME not set. Uploads will be stored on local disk.")
	}
}

// IsDevelopment reports whether the app runs in development mode
func IsDevelopment() bool {
	return AppConfig == nil || AppConfig.Env != "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
