package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"cmdb-sync/core/database"
	"cmdb-sync/core/logger"
	"cmdb-sync/core/reconcile"
	"cmdb-sync/core/server"
	"cmdb-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the bucket holding registry exports.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the registry mirror database.
	Database database.Config `mapstructure:"database"`
	// NetIM holds configuration for the monitoring platform.
	NetIM NetIMConfig `mapstructure:"netim"`
	// ServiceNow holds configuration for the registry's table API.
	ServiceNow ServiceNowConfig `mapstructure:"servicenow"`
	// Inventory selects the registry source and comparison options.
	Inventory InventoryConfig `mapstructure:"inventory"`
}

// configName is the optional YAML file read from the config directory.
const configName = "cmdb-sync"

// LoadConfig loads configuration from an optional cmdb-sync.yaml, a .env file and
// environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s.yaml: %w", configName, err)
		}
	}

	// Map environment variables to nested keys (e.g. NETIM_HOST -> netim.host)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	if !c.Inventory.IsValidSource() {
		return fmt.Errorf("inventory.source %q is not one of csv, bucket, database, api", c.Inventory.Source)
	}
	switch c.Inventory.Fields {
	case "", reconcile.ProfileCSV, reconcile.ProfileAPI:
	default:
		return fmt.Errorf("inventory.fields %q is not one of csv, api", c.Inventory.Fields)
	}
	if c.Inventory.ReportLimit < 0 {
		return fmt.Errorf("inventory.report_limit must not be negative")
	}
	if c.Server.ReportTTLSeconds < 0 {
		return fmt.Errorf("server.report_ttl_seconds must not be negative")
	}
	return nil
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
