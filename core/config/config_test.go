package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "cmdb_ci", cfg.Database.DevicesTable)
	assert.Equal(t, "cmn_location", cfg.Database.LocationsTable)
	assert.Equal(t, 8543, cfg.NetIM.Port)
	assert.Equal(t, "/api/netim/v1", cfg.NetIM.BasePath)
	assert.Equal(t, SourceCSV, cfg.Inventory.Source)
	assert.Equal(t, 10, cfg.Inventory.ReportLimit)
	assert.False(t, cfg.Inventory.ValidateAddresses)
	assert.Empty(t, cfg.Inventory.CountryAliases)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NETIM_HOST", "netim.example.com")
	t.Setenv("INVENTORY_SOURCE", "bucket")
	t.Setenv("INVENTORY_VALIDATE_ADDRESSES", "true")
	t.Setenv("INVENTORY_COUNTRY_ALIASES", "USA=United States,UK=United Kingdom")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "netim.example.com", cfg.NetIM.Host)
	assert.Equal(t, SourceBucket, cfg.Inventory.Source)
	assert.True(t, cfg.Inventory.ValidateAddresses)
	assert.Equal(t, []string{"USA=United States", "UK=United Kingdom"}, cfg.Inventory.CountryAliases)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9191\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SERVER_PORT") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Server.Port)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "netim:\n  host: netim.lab\n  port: 9443\ninventory:\n  source: database\n  country_aliases:\n    - USA=United States\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cmdb-sync.yaml"), []byte(yaml), 0o600))
	t.Setenv("NETIM_PORT", "8443")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "netim.lab", cfg.NetIM.Host)
	assert.Equal(t, 8443, cfg.NetIM.Port)
	assert.Equal(t, SourceDatabase, cfg.Inventory.Source)
	assert.Equal(t, []string{"USA=United States"}, cfg.Inventory.CountryAliases)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("INVENTORY_SOURCE", "ldap")

	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "inventory.source")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Inventory: InventoryConfig{Source: SourceCSV, ReportLimit: 10}}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Inventory.Fields = "xml"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Inventory.ReportLimit = -1
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Server.ReportTTLSeconds = -5
	assert.Error(t, bad.Validate())
}

func TestInventoryConfig(t *testing.T) {
	assert.Equal(t, "csv", InventoryConfig{Source: SourceCSV}.FieldProfile())
	assert.Equal(t, "csv", InventoryConfig{Source: SourceBucket}.FieldProfile())
	assert.Equal(t, "api", InventoryConfig{Source: SourceDatabase}.FieldProfile())
	assert.Equal(t, "api", InventoryConfig{Source: SourceAPI}.FieldProfile())
	assert.Equal(t, "api", InventoryConfig{Source: SourceCSV, Fields: "api"}.FieldProfile())

	assert.True(t, InventoryConfig{Source: SourceAPI}.IsValidSource())
	assert.False(t, InventoryConfig{Source: "ldap"}.IsValidSource())
}

func TestEndpointREST(t *testing.T) {
	netim := NetIMConfig{Host: "netim", Port: 8543, BasePath: "/api/netim/v1", Username: "admin", Password: "pw"}
	rc := netim.REST()
	assert.Equal(t, "https://netim:8543/api/netim/v1", rc.BaseURL)
	assert.Equal(t, "admin", rc.Username)

	assert.Equal(t, "https://dev.service-now.com", ServiceNowConfig{Instance: "dev.service-now.com"}.REST().BaseURL)
	assert.Equal(t, "http://localhost:8080", ServiceNowConfig{Instance: "http://localhost:8080"}.REST().BaseURL)
}
