// Package config loads the application configuration from the environment
// and the category registry from an optional JSON file.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig describes the service configuration.
type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	Port   string `envconfig:"PORT" default:"8080"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`

	ContentDir   string `envconfig:"CONTENT_DIR" default:"content/posts"`
	RegistryPath string `envconfig:"CATEGORY_REGISTRY_PATH"`

	Site struct {
		URL         string `envconfig:"SITE_URL" default:"https://tarikoch.com"`
		Title       string `envconfig:"SITE_TITLE" default:"ታሪኮች"`
		Description string `envconfig:"SITE_DESCRIPTION" default:"የመጽሐፍ ቅዱስ ታሪኮች እና ጽሑፎች"`
	} `envconfig:""`

	Listing struct {
		PageSize int `envconfig:"PAGE_SIZE" default:"9"`
	} `envconfig:""`

	Feed struct {
		CacheTTLMinutes int `envconfig:"FEED_CACHE_TTL" default:"60"`
	} `envconfig:""`

	Mail struct {
		APIKey   string `envconfig:"MAIL_API_KEY"`
		Endpoint string `envconfig:"MAIL_API_ENDPOINT" default:"https://api.resend.com/emails"`
		From     string `envconfig:"MAIL_FROM" default:"ታሪኮች <newsletter@tarikoch.com>"`
	} `envconfig:""`

	RateLimit struct {
		PerMinute int `envconfig:"NEWSLETTER_RATE_PER_MINUTE" default:"10"`
		Burst     int `envconfig:"NEWSLETTER_RATE_BURST" default:"5"`
	} `envconfig:""`
}

// Load reads the configuration from the environment.
func Load() (AppConfig, error) {
	var cfg AppConfig

	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("could not load config from environment: %w", err)
	}

	return cfg, nil
}
