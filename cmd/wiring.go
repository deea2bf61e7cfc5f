package cmd

import (
	"fmt"
	"time"

	"cmdb-sync/core/config"
	"cmdb-sync/core/database"
	"cmdb-sync/core/reconcile"
	"cmdb-sync/core/rest"
	"cmdb-sync/core/storage"
	"cmdb-sync/feature/compare"
	"cmdb-sync/feature/devices"
	"cmdb-sync/feature/locations"
	"cmdb-sync/feature/netim"
	"cmdb-sync/feature/registry"

	"go.uber.org/zap"
)

// credentialFiles names the optional YAML credential files.
type credentialFiles struct {
	netim      string
	serviceNow string
}

// buildService wires the registry source, the NetIM client and the comparison
// service from configuration.
func buildService(cfg *config.Config, files credentialFiles, logg *zap.Logger) (*compare.Service, error) {
	netimCreds, err := config.LoadCredentials(files.netim)
	if err != nil {
		return nil, err
	}
	netimCreds.ApplyTo(&cfg.NetIM)
	if cfg.NetIM.Host == "" {
		return nil, fmt.Errorf("NetIM host is not configured (set NETIM_HOST or hostname in %q)", files.netim)
	}
	if err := promptPassword(&cfg.NetIM.Password, fmt.Sprintf("NetIM password for %s@%s: ", cfg.NetIM.Username, cfg.NetIM.Host)); err != nil {
		return nil, err
	}

	api, err := rest.NewClient(cfg.NetIM.REST())
	if err != nil {
		return nil, fmt.Errorf("failed to create NetIM client: %w", err)
	}
	client := netim.NewClient(api, netim.DefaultFields(), logg)

	fields := reconcile.FieldsByProfile(cfg.Inventory.FieldProfile())
	source, err := buildSource(cfg, fields, files, logg)
	if err != nil {
		return nil, err
	}

	aliases, err := locations.ParseAliases(cfg.Inventory.CountryAliases)
	if err != nil {
		return nil, fmt.Errorf("invalid country aliases: %w", err)
	}

	opts := compare.Options{
		Devices: devices.Options{
			EmptyAddress:      fields.AddressEmpty,
			ValidateAddresses: cfg.Inventory.ValidateAddresses,
		},
		CountryAliases: aliases,
		ReportTTL:      time.Duration(cfg.Server.ReportTTLSeconds) * time.Second,
	}
	return compare.NewService(source, client, client, opts, logg), nil
}

// buildSource creates the configured registry source.
func buildSource(cfg *config.Config, fields reconcile.Fields, files credentialFiles, logg *zap.Logger) (registry.Source, error) {
	inv := cfg.Inventory
	if !inv.IsValidSource() {
		return nil, fmt.Errorf("unknown registry source %q", inv.Source)
	}

	switch inv.Source {
	case config.SourceBucket:
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return registry.NewBucketSource(store, cfg.Storage.Bucket, inv.DevicesObject, inv.LocationsObject, fields, logg), nil

	case config.SourceDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to registry database: %w", err)
		}
		logg.Info("Connected to registry database", zap.String("database", cfg.Database.Name))
		return registry.NewDBSource(db, cfg.Database.DevicesTable, cfg.Database.LocationsTable, fields, logg), nil

	case config.SourceAPI:
		creds, err := config.LoadCredentials(files.serviceNow)
		if err != nil {
			return nil, err
		}
		creds.ApplyToServiceNow(&cfg.ServiceNow)
		if cfg.ServiceNow.Instance == "" {
			return nil, fmt.Errorf("ServiceNow instance is not configured (set SERVICENOW_INSTANCE or hostname in %q)", files.serviceNow)
		}
		if err := promptPassword(&cfg.ServiceNow.Password, fmt.Sprintf("ServiceNow password for %s: ", cfg.ServiceNow.Username)); err != nil {
			return nil, err
		}
		api, err := rest.NewClient(cfg.ServiceNow.REST())
		if err != nil {
			return nil, fmt.Errorf("failed to create ServiceNow client: %w", err)
		}
		include := registry.ParseFilters(creds.IncludeFilters, logg)
		exclude := registry.ParseFilters(creds.ExcludeFilters, logg)
		return registry.NewAPISource(api, include, exclude, fields, logg), nil

	default:
		return registry.NewFileSource(inv.DevicesPath, inv.LocationsPath, fields, logg), nil
	}
}
