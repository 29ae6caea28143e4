package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultDatasetURL is the public salary CSV the dashboard was built around.
const DefaultDatasetURL = "https://raw.githubusercontent.com/vqrca/dashboard_salarios_dados/refs/heads/main/dados-imersao-final.csv"

// DatasetConfig describes where the dataset is read from and how long it is memoized.
type DatasetConfig struct {
	// URL is the locator: http(s)://, s3://bucket/key or postgres://.
	URL          string        `validate:"required,url"`
	Table        string        `validate:"required"`
	FetchTimeout time.Duration `validate:"gt=0"`
	// CacheTTL of zero keeps the first loaded dataset for the life of the process.
	CacheTTL time.Duration `validate:"gte=0"`
	Preload  bool
}

// DashboardConfig holds the presentation knobs.
type DashboardConfig struct {
	TopN            int    `validate:"gte=1,lte=100"`
	HistogramBins   int    `validate:"gte=1,lte=200"`
	CountryJobTitle string `validate:"required"`
	TableLimit      int    `validate:"gte=1"`
}

// DatabaseConfig holds pool settings for the postgres dataset source.
// Connection details come from the dataset URL itself.
type DatabaseConfig struct {
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for the s3 dataset source.
// The bucket is taken from the dataset URL.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// LogConfig selects the log level and output format (json or console).
type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `validate:"oneof=json console"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	Port      string `validate:"required,numeric"`
	Dataset   DatasetConfig
	Dashboard DashboardConfig
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Log       LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Dataset: DatasetConfig{
			URL:          getEnv("DATASET_URL", DefaultDatasetURL),
			Table:        getEnv("DATASET_TABLE", "salaries"),
			FetchTimeout: getEnvDuration("DATASET_FETCH_TIMEOUT", 30*time.Second),
			CacheTTL:     getEnvDuration("DATASET_CACHE_TTL", 0),
			Preload:      getEnvBool("DATASET_PRELOAD", false),
		},
		Dashboard: DashboardConfig{
			TopN:            getEnvInt("DASHBOARD_TOP_N", 10),
			HistogramBins:   getEnvInt("DASHBOARD_HISTOGRAM_BINS", 30),
			CountryJobTitle: getEnv("DASHBOARD_COUNTRY_JOB_TITLE", "Data Scientist"),
			TableLimit:      getEnvInt("DASHBOARD_TABLE_LIMIT", 500),
		},
		Database: DatabaseConfig{
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the loaded values and reports every invalid field at once.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
