package cmd

import (
	"testing"

	"cmdb-sync/core/config"
	"cmdb-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func resetCompareFlags(t *testing.T) {
	t.Cleanup(func() {
		devicesCSV, locationsCSV = "", ""
		devicesObject, locationsObject = "", ""
		useBucket, useDatabase = false, false
		serviceNowYML, netimYML = "", ""
	})
}

func TestApplyCompareFlags_SourceSelection(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
		want  string
	}{
		{"default keeps config", func() {}, config.SourceDatabase},
		{"csv paths", func() { devicesCSV = "d.csv" }, config.SourceCSV},
		{"bucket", func() { useBucket = true }, config.SourceBucket},
		{"database wins over bucket", func() { useBucket, useDatabase = true, true }, config.SourceDatabase},
		{"servicenow wins", func() { useDatabase, serviceNowYML = true, "sn.yml" }, config.SourceAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCompareFlags(t)
			tt.setup()
			cfg := &config.Config{Inventory: config.InventoryConfig{Source: config.SourceDatabase}}
			applyCompareFlags(cfg)
			assert.Equal(t, tt.want, cfg.Inventory.Source)
		})
	}
}

func TestApplyCompareFlags_Paths(t *testing.T) {
	resetCompareFlags(t)
	devicesCSV, locationsCSV = "d.csv", "l.csv"
	devicesObject = "exports/d.csv"

	cfg := &config.Config{Inventory: config.InventoryConfig{LocationsObject: "locations.csv"}}
	applyCompareFlags(cfg)

	assert.Equal(t, "d.csv", cfg.Inventory.DevicesPath)
	assert.Equal(t, "l.csv", cfg.Inventory.LocationsPath)
	assert.Equal(t, "exports/d.csv", cfg.Inventory.DevicesObject)
	assert.Equal(t, "locations.csv", cfg.Inventory.LocationsObject)
}

func TestBuildSource(t *testing.T) {
	cfg := &config.Config{Inventory: config.InventoryConfig{Source: config.SourceCSV}}
	src, err := buildSource(cfg, reconcile.CSVFields(), credentialFiles{}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "csv", src.Name())

	cfg.Inventory.Source = "ftp"
	_, err = buildSource(cfg, reconcile.CSVFields(), credentialFiles{}, zap.NewNop())
	assert.Error(t, err)

	cfg.Inventory.Source = config.SourceAPI
	_, err = buildSource(cfg, reconcile.CSVFields(), credentialFiles{}, zap.NewNop())
	assert.ErrorContains(t, err, "ServiceNow instance")
}

func TestBuildService_RequiresNetIMHost(t *testing.T) {
	cfg := &config.Config{Inventory: config.InventoryConfig{Source: config.SourceCSV}}
	_, err := buildService(cfg, credentialFiles{}, zap.NewNop())
	assert.ErrorContains(t, err, "NetIM host")
}
