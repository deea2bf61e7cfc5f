package registry

import (
	"context"
	"errors"
	"strings"

	"cmdb-sync/core/reconcile"
)

// ErrMissingColumn is returned when an input lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// DeviceRecord is one configuration item row of the asset registry.
// Names may repeat across rows; Address may be blank or the registry's sentinel.
type DeviceRecord struct {
	Name     string `json:"name"`
	CMDBID   string `json:"cmdb_id"`
	Address  string `json:"address"`
	Location string `json:"location"`
}

// LocationRecord is one location row of the asset registry.
type LocationRecord struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Snapshot is everything read from the registry for one run.
type Snapshot struct {
	Devices   []DeviceRecord
	Locations []LocationRecord
}

// Source loads a registry snapshot.
type Source interface {
	// Name identifies the source in logs (e.g., "csv", "bucket").
	Name() string
	// Load reads devices and locations.
	Load(ctx context.Context) (*Snapshot, error)
}

// DevicesFromRows converts field-keyed rows to device records.
// Rows without a name are skipped and counted.
func DevicesFromRows(rows []map[string]string, f reconcile.Fields) ([]DeviceRecord, int) {
	devices := make([]DeviceRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		name := strings.TrimSpace(row[f.DeviceName])
		if name == "" {
			skipped++
			continue
		}
		devices = append(devices, DeviceRecord{
			Name:     name,
			CMDBID:   strings.TrimSpace(row[f.DeviceID]),
			Address:  strings.TrimSpace(row[f.DeviceAddress]),
			Location: strings.TrimSpace(row[f.DeviceLocation]),
		})
	}
	return devices, skipped
}

// LocationsFromRows converts field-keyed rows to location records.
// Rows without a name are skipped and counted.
func LocationsFromRows(rows []map[string]string, f reconcile.Fields) ([]LocationRecord, int) {
	locations := make([]LocationRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		name := strings.TrimSpace(row[f.LocationName])
		if name == "" {
			skipped++
			continue
		}
		locations = append(locations, LocationRecord{
			Name:      name,
			City:      strings.TrimSpace(row[f.LocationCity]),
			Region:    strings.TrimSpace(row[f.LocationRegion]),
			Country:   strings.TrimSpace(row[f.LocationCountry]),
			Latitude:  strings.TrimSpace(row[f.LocationLatitude]),
			Longitude: strings.TrimSpace(row[f.LocationLongitude]),
		})
	}
	return locations, skipped
}
