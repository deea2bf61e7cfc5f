package config

import (
	"fmt"
	"strings"

	"cmdb-sync/core/rest"
)

// NetIMConfig holds connection settings for the monitoring platform's REST API.
type NetIMConfig struct {
	// Host is the platform hostname or address.
	Host string `mapstructure:"host" default:""`
	// Port is the API port.
	Port int `mapstructure:"port" default:"8543"`
	// BasePath is the API root.
	BasePath string `mapstructure:"base_path" default:"/api/netim/v1"`
	// Username for basic authentication.
	Username string `mapstructure:"username" default:"admin"`
	// Password for basic authentication.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds bounds connection setup and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// InsecureSkipVerify accepts self-signed appliance certificates.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"false"`
}

// REST returns the client configuration for the platform's API.
func (c NetIMConfig) REST() rest.Config {
	return rest.Config{
		BaseURL:            fmt.Sprintf("https://%s:%d%s", c.Host, c.Port, c.BasePath),
		Username:           c.Username,
		Password:           c.Password,
		TimeoutSeconds:     c.TimeoutSeconds,
		InsecureSkipVerify: c.InsecureSkipVerify,
	}
}

// ServiceNowConfig holds connection settings for the registry's table API.
type ServiceNowConfig struct {
	// Instance is the instance hostname (e.g., example.service-now.com) or a full URL.
	Instance string `mapstructure:"instance" default:""`
	// Username for basic authentication.
	Username string `mapstructure:"username" default:""`
	// Password for basic authentication.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds bounds connection setup and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// REST returns the client configuration for the table API.
func (c ServiceNowConfig) REST() rest.Config {
	base := c.Instance
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return rest.Config{
		BaseURL:        base,
		Username:       c.Username,
		Password:       c.Password,
		TimeoutSeconds: c.TimeoutSeconds,
	}
}

// Registry sources.
const (
	SourceCSV      = "csv"
	SourceBucket   = "bucket"
	SourceDatabase = "database"
	SourceAPI      = "api"
)

// InventoryConfig selects where the registry is read from and how it is compared.
type InventoryConfig struct {
	// Source is one of csv, bucket, database or api.
	Source string `mapstructure:"source" default:"csv"`
	// Fields overrides the field profile (csv or api). Empty picks the source's natural profile.
	Fields string `mapstructure:"fields" default:""`
	// DevicesPath and LocationsPath are the local CSV exports.
	DevicesPath   string `mapstructure:"devices_path" default:""`
	LocationsPath string `mapstructure:"locations_path" default:""`
	// DevicesObject and LocationsObject are the CSV exports in the storage bucket.
	DevicesObject   string `mapstructure:"devices_object" default:"devices.csv"`
	LocationsObject string `mapstructure:"locations_object" default:"locations.csv"`
	// ValidateAddresses sets aside devices whose address is not a usable IP address.
	ValidateAddresses bool `mapstructure:"validate_addresses" default:"false"`
	// CountryAliases maps registry country names to platform names ("From=To").
	CountryAliases []string `mapstructure:"country_aliases" default:""`
	// ReportLimit is how many names each summary list shows.
	ReportLimit int `mapstructure:"report_limit" default:"10"`
}

// FieldProfile returns the field profile to read the configured source with.
func (c InventoryConfig) FieldProfile() string {
	if c.Fields != "" {
		return c.Fields
	}
	switch c.Source {
	case SourceDatabase, SourceAPI:
		return "api"
	default:
		return "csv"
	}
}

// IsValidSource checks if the configured source is supported.
func (c InventoryConfig) IsValidSource() bool {
	switch c.Source {
	case SourceCSV, SourceBucket, SourceDatabase, SourceAPI:
		return true
	default:
		return false
	}
}
