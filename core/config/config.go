package config

import (
	"reflect"
	"strings"

	"stash-bridge/core/logger"
	"stash-bridge/core/mediastore"
	"stash-bridge/core/server"
	"stash-bridge/core/source"
	"stash-bridge/core/stash"
	"stash-bridge/core/worker"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SyncConfig holds settings for the processing runs.
type SyncConfig struct {
	// Platform is the content platform label. It names the parent studio
	// and prefixes the per-account studios.
	Platform string `mapstructure:"platform" default:"fansly"`
	// Pool holds the worker pool bounds for bulk runs.
	Pool worker.Config `mapstructure:"pool"`
	// VerifyArchive controls whether media objects are stat'd against the
	// archive bucket before entities are pushed at Stash.
	VerifyArchive bool `mapstructure:"verify_archive" default:"true"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the status HTTP server.
	Server server.Config `mapstructure:"server"`
	// Stash holds configuration for the Stash GraphQL connection.
	Stash stash.Config `mapstructure:"stash"`
	// Source holds configuration for the platform metadata database.
	Source source.Config `mapstructure:"source"`
	// Archive holds configuration for the media archive bucket.
	Archive mediastore.Config `mapstructure:"archive"`
	// Sync holds settings for the processing runs.
	Sync SyncConfig `mapstructure:"sync"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. STASH_URL -> stash.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
