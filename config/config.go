package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration parameters read from environment variables.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	HTTPPort string `envconfig:"HTTP_PORT" default:"4242"`

	APISecretKey string `envconfig:"API_SECRET_KEY" required:"true"`

	// Service-account credentials and default spreadsheet for the sheet poller.
	GoogleCredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE" default:"config/google_credentials.json"`
	SpreadsheetID         string `envconfig:"SPREADSHEET_ID"`
	SheetName             string `envconfig:"SHEET_NAME" default:"Form Responses 1"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`

	CronSchedule string `envconfig:"CRON_SCHEDULE" default:"0 0 * * *"`

	// Upload limit for CSV/XLSX response files, in bytes.
	MaxUploadSize int64 `envconfig:"MAX_UPLOAD_SIZE" default:"16777216"`

	PaperS3Key    string `envconfig:"PAPER_S3_KEY" required:"true"`
	PaperS3Secret string `envconfig:"PAPER_S3_SECRET" required:"true"`
	PaperS3URL    string `envconfig:"PAPER_S3_URL" required:"true"`
	PaperS3Region string `envconfig:"PAPER_S3_REGION" required:"true"`
	PaperS3Bucket string `envconfig:"PAPER_S3_BUCKET" required:"true"`

	DefaultAuthor      string `envconfig:"DEFAULT_AUTHOR" default:"GI Research Team"`
	DefaultInstitution string `envconfig:"DEFAULT_INSTITUTION" default:"Geographical Indication Research Institute"`
}

// DSN returns the data source name for the PostgreSQL connection.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
