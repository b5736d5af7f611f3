package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	LogDir           string `yaml:"LOG_DIR"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`

	// Backing store: memory, sqlite, postgres or s3
	StoreDriver string `yaml:"STORE_DRIVER"`
	SQLitePath  string `yaml:"SQLITE_PATH"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSS3Prefix  string `yaml:"AWS_S3_PREFIX"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// OCR ingestion service
	OCRAPIURL         string `yaml:"OCR_API_URL"`
	OCRAPIToken       string `yaml:"OCR_API_TOKEN"`
	OCRTimeoutSeconds int    `yaml:"OCR_TIMEOUT_SECONDS"`
}

var config Config

// LoadConfig reads config.yaml from the working directory. A missing file is
// not fatal: every key falls back to the environment variable of the same name.
func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	config = Config{}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	value := lookup(key)
	if value == "" {
		return os.Getenv(key)
	}
	return value
}

// GetConfigOrDefault is GetConfig with a fallback for unset keys.
func GetConfigOrDefault(key, fallback string) string {
	if value := GetConfig(key); value != "" {
		return value
	}
	return fallback
}

func lookup(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_DIR":
		return config.LogDir
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "STORE_DRIVER":
		return config.StoreDriver
	case "SQLITE_PATH":
		return config.SQLitePath
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_S3_PREFIX":
		return config.AWSS3Prefix
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "OCR_API_URL":
		return config.OCRAPIURL
	case "OCR_API_TOKEN":
		return config.OCRAPIToken
	case "OCR_TIMEOUT_SECONDS":
		if config.OCRTimeoutSeconds == 0 {
			return ""
		}
		return strconv.Itoa(config.OCRTimeoutSeconds)
	default:
		return ""
	}
}
