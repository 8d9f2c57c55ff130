package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port              string
	MongoURI          string
	MongoDBName       string
	RedisURL          string
	JWTSecret         string
	AccessTokenExpiry time.Duration
	UploadDir         string
	UploadBaseURL     string
	MaxUploadSizeMB   int64
	CORSOrigins       []string
}

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		MongoURI:          getEnv("MONGODB_URI", ""),
		MongoDBName:       getEnv("MONGODB_DB_NAME", "hotelhub"),
		RedisURL:          getEnv("REDIS_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AccessTokenExpiry: time.Hour * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		UploadBaseURL:     getEnv("UPLOAD_BASE_URL", "/uploads"),
		MaxUploadSizeMB:   int64(getEnvAsInt("MAX_UPLOAD_SIZE_MB", 10)),
		CORSOrigins:       getEnvAsSlice("CORS_ORIGINS", []string{"*"}),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAccessTokenExpiry returns the lifetime of issued bearer tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetCORSOrigins returns the allowed CORS origins.
func (c *Config) GetCORSOrigins() []string {
	return c.CORSOrigins
}

// GetUploadDir returns the directory uploaded files are stored in.
func (c *Config) GetUploadDir() string {
	return c.UploadDir
}

// GetUploadBaseURL returns the public URL prefix for stored uploads.
func (c *Config) GetUploadBaseURL() string {
	return c.UploadBaseURL
}

// GetMaxUploadSizeMB returns the per-file upload size limit in megabytes.
func (c *Config) GetMaxUploadSizeMB() int64 {
	return c.MaxUploadSizeMB
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get a comma-separated environment variable as a slice.
func getEnvAsSlice(name string, fallback []string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
