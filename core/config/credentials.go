package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// Credentials is the content of a YAML credentials file.
// Every key is optional; absent keys are left empty.
type Credentials struct {
	Hostname string
	Username string
	Password string
	// IncludeFilters and ExcludeFilters hold raw {name, value} entries for
	// registry API filtering.
	IncludeFilters []map[string]any
	ExcludeFilters []map[string]any
}

// LoadCredentials reads a credentials file. A missing file yields empty credentials.
func LoadCredentials(path string) (*Credentials, error) {
	creds := &Credentials{}
	if path == "" {
		return creds, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return creds, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}

	creds.Hostname = v.GetString("hostname")
	creds.Username = v.GetString("username")
	creds.Password = v.GetString("password")
	if err := v.UnmarshalKey("include_filters", &creds.IncludeFilters); err != nil {
		return nil, fmt.Errorf("invalid include_filters in %s: %w", path, err)
	}
	if err := v.UnmarshalKey("exclude_filters", &creds.ExcludeFilters); err != nil {
		return nil, fmt.Errorf("invalid exclude_filters in %s: %w", path, err)
	}

	return creds, nil
}

// ApplyTo overrides the NetIM settings with any non-empty credential value.
func (c *Credentials) ApplyTo(cfg *NetIMConfig) {
	if c.Hostname != "" {
		cfg.Host = c.Hostname
	}
	if c.Username != "" {
		cfg.Username = c.Username
	}
	if c.Password != "" {
		cfg.Password = c.Password
	}
}

// ApplyToServiceNow overrides the table API settings with any non-empty credential value.
func (c *Credentials) ApplyToServiceNow(cfg *ServiceNowConfig) {
	if c.Hostname != "" {
		cfg.Instance = c.Hostname
	}
	if c.Username != "" {
		cfg.Username = c.Username
	}
	if c.Password != "" {
		cfg.Password = c.Password
	}
}
