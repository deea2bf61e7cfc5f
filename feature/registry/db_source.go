package registry

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cmdb-sync/core/database"
	"cmdb-sync/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBSource reads the registry from a MySQL mirror of its tables.
// Unlike file exports, a failing database aborts the run.
type DBSource struct {
	db             *gorm.DB
	devicesTable   string
	locationsTable string
	fields         reconcile.Fields
	logger         *zap.Logger
}

// NewDBSource creates a source over the given mirror tables.
func NewDBSource(db *gorm.DB, devicesTable, locationsTable string, fields reconcile.Fields, logger *zap.Logger) *DBSource {
	return &DBSource{
		db:             db,
		devicesTable:   devicesTable,
		locationsTable: locationsTable,
		fields:         fields,
		logger:         logger,
	}
}

func (s *DBSource) Name() string {
	return "database"
}

// Load validates both tables and reads the required columns.
func (s *DBSource) Load(ctx context.Context) (*Snapshot, error) {
	deviceRows, err := s.selectRows(ctx, s.devicesTable, s.fields.DeviceColumns())
	if err != nil {
		return nil, err
	}
	locationRows, err := s.selectRows(ctx, s.locationsTable, s.fields.LocationColumns())
	if err != nil {
		return nil, err
	}

	devices, skippedDevices := DevicesFromRows(deviceRows, s.fields)
	locations, skippedLocations := LocationsFromRows(locationRows, s.fields)
	if skippedDevices+skippedLocations > 0 {
		s.logger.Warn("Skipped rows without a name",
			zap.Int("devices", skippedDevices),
			zap.Int("locations", skippedLocations),
		)
	}

	s.logger.Info("Loaded registry mirror",
		zap.String("devices_table", s.devicesTable),
		zap.String("locations_table", s.locationsTable),
		zap.Int("devices", len(devices)),
		zap.Int("locations", len(locations)),
	)
	return &Snapshot{Devices: devices, Locations: locations}, nil
}

func (s *DBSource) selectRows(ctx context.Context, table string, columns []string) ([]map[string]string, error) {
	db := s.db.WithContext(ctx)

	var wanted []string
	for _, col := range columns {
		if col != "" {
			wanted = append(wanted, col)
		}
	}

	missing, err := database.MissingColumns(db, table, wanted)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingColumn, table, strings.Join(missing, ", "))
	}

	rows, err := db.Table(table).Select(wanted).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	defer rows.Close()

	var out []map[string]string
	values := make([]sql.NullString, len(wanted))
	dest := make([]any, len(wanted))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", table, err)
		}
		row := make(map[string]string, len(wanted))
		for i, col := range wanted {
			row[col] = strings.TrimSpace(values[i].String)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	return out, nil
}
