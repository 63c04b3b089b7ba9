package blobstore

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/neotaste/creator-portal/internal/pkg/env"
)

// Config holds object storage configuration
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	VideoBucket     string
	InvoiceBucket   string
	EndpointURL     string // Optional for S3-compatible services
}

// LoadConfig loads object storage configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "eu-central-1"),
		VideoBucket:     env.GetEnv("S3_VIDEO_BUCKET", "videos"),
		InvoiceBucket:   env.GetEnv("S3_INVOICE_BUCKET", "invoices"),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
	}

	if config.AccessKeyID == "" {
		return nil, errors.New("S3_ACCESS_KEY_ID is required")
	}
	if config.SecretAccessKey == "" {
		return nil, errors.New("S3_SECRET_ACCESS_KEY is required")
	}

	return config, nil
}

// ObjectKey generates a standardized object key for a creator upload.
// Format: <creator-uuid>/<unix-millis>-<sanitized-filename>
func ObjectKey(creatorUUID, fileName string) string {
	base := filepath.Base(fileName)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s/%d-%s", creatorUUID, time.Now().UnixMilli(), base)
}

// GetAppEnv returns the current application environment
func GetAppEnv() string {
	return env.GetEnv("APP_ENV", "dev")
}
