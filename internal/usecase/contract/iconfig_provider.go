package contract

import (
	"time"
)

// IConfigProvider exposes the configuration values consumed outside the
// config package itself.
type IConfigProvider interface {
	// GetAccessTokenExpiry returns the lifetime of issued bearer tokens.
	GetAccessTokenExpiry() time.Duration
	// GetCORSOrigins returns the allowed CORS origins.
	GetCORSOrigins() []string
	// GetUploadDir returns the directory uploaded files are stored in.
	GetUploadDir() string
	// GetUploadBaseURL returns the public URL prefix for stored uploads.
	GetUploadBaseURL() string
	// GetMaxUploadSizeMB returns the per-file upload size limit in megabytes.
	GetMaxUploadSizeMB() int64
}
