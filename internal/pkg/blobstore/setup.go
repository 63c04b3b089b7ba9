package blobstore

import (
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

var (
	defaultClient *Client
	setupOnce     sync.Once
)

// Setup initializes the shared storage client from the environment.
func Setup() error {
	var err error
	setupOnce.Do(func() {
		var cfg *Config
		cfg, err = LoadConfig()
		if err != nil {
			return
		}
		defaultClient, err = NewClient(cfg)
	})
	return err
}

// GetClient returns the shared storage client, or nil before Setup ran.
func GetClient() *Client {
	if defaultClient == nil {
		if err := Setup(); err != nil {
			log.Errorf("[BlobStore] Setup failed: %v", err)
		}
	}
	return defaultClient
}

// SetClient swaps the shared client, used by tests.
func SetClient(c *Client) {
	defaultClient = c
}
