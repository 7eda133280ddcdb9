package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Google OAuth
	GoogleClientID     string `yaml:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `yaml:"GOOGLE_CLIENT_SECRET"`

	// AWS S3 configuration (avatar uploads)
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`

	// Logging
	LogLevel string `yaml:"LOG_LEVEL"`
}

var config Config

var configKeys = map[string]*string{
	"DB_USER":              &config.DBUser,
	"DB_NAME":              &config.DBName,
	"DB_PASSWORD":          &config.DBPassword,
	"DB_PORT":              &config.DBPort,
	"DB_HOST":              &config.DBHost,
	"JWT_SECRET":           &config.JWTSecret,
	"APP_URL":              &config.AppURL,
	"SMTP_HOST":            &config.SMTPHost,
	"SMTP_PORT":            &config.SMTPPort,
	"SMTP_SENDER_NAME":     &config.SMTPSenderName,
	"SMTP_AUTH_EMAIL":      &config.SMTPAuthEmail,
	"SMTP_AUTH_PASSWORD":   &config.SMTPAuthPassword,
	"GOOGLE_CLIENT_ID":     &config.GoogleClientID,
	"GOOGLE_CLIENT_SECRET": &config.GoogleClientSecret,
	"AWS_S3_BUCKET":        &config.AWSS3Bucket,
	"AWS_S3_REGION":        &config.AWSS3Region,
	"AWS_ACCESS_KEY":       &config.AWSAccessKey,
	"AWS_SECRET_KEY":       &config.AWSSecretKey,
	"GEMINI_API_KEY":       &config.GeminiAPIKey,
	"GEMINI_MODEL":         &config.GeminiModel,
	"LOG_LEVEL":            &config.LogLevel,
}

// LoadConfig reads config.yaml if present. Keys missing from the file
// fall back to environment variables in GetConfig, so a .env-only setup
// works too.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("config.yaml not read, falling back to environment: %s\n", err)
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	if p, ok := configKeys[key]; ok && *p != "" {
		return *p
	}
	return os.Getenv(key)
}
