package registry

import (
	"context"
	"fmt"
	"io"
	"os"

	"cmdb-sync/core/reconcile"
	"cmdb-sync/core/storage"

	"go.uber.org/zap"
)

// opener returns a reader for a named CSV document.
type opener func(ctx context.Context, name string) (io.ReadCloser, error)

// csvSource reads the device and location exports through an opener.
// Unreadable or malformed documents degrade to an empty set with a warning.
type csvSource struct {
	name  string
	open  opener
	// check runs before any document is opened; an error empties the snapshot.
	check func(ctx context.Context) error

	devices   string
	locations string
	fields    reconcile.Fields
	logger    *zap.Logger
}

func (s *csvSource) Name() string {
	return s.name
}

// Load reads both documents. It never fails; input errors are logged.
func (s *csvSource) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	if s.check != nil {
		if err := s.check(ctx); err != nil {
			s.logger.Warn("Registry export unavailable", zap.String("source", s.name), zap.Error(err))
			return snap, nil
		}
	}

	if table := s.readTable(ctx, "devices", s.devices); table != nil {
		devices, skipped, err := table.Devices(s.fields)
		if err != nil {
			s.logger.Warn("Device input is missing expected fields", zap.String("input", s.devices), zap.Error(err))
		} else {
			snap.Devices = devices
			s.logSkipped("devices", s.devices, skipped)
		}
	}

	if table := s.readTable(ctx, "locations", s.locations); table != nil {
		locations, skipped, err := table.Locations(s.fields)
		if err != nil {
			s.logger.Warn("Location input is missing expected fields", zap.String("input", s.locations), zap.Error(err))
		} else {
			snap.Locations = locations
			s.logSkipped("locations", s.locations, skipped)
		}
	}

	s.logger.Info("Loaded registry export",
		zap.String("source", s.name),
		zap.Int("devices", len(snap.Devices)),
		zap.Int("locations", len(snap.Locations)),
	)
	return snap, nil
}

func (s *csvSource) readTable(ctx context.Context, kind, name string) *Table {
	if name == "" {
		s.logger.Warn("No input configured", zap.String("kind", kind), zap.String("source", s.name))
		return nil
	}

	rc, err := s.open(ctx, name)
	if err != nil {
		s.logger.Warn("Failed to open input", zap.String("kind", kind), zap.String("input", name), zap.Error(err))
		return nil
	}
	defer rc.Close()

	table, err := ReadCSV(rc)
	if err != nil {
		s.logger.Warn("Failed to parse input", zap.String("kind", kind), zap.String("input", name), zap.Error(err))
		return nil
	}
	return table
}

func (s *csvSource) logSkipped(kind, name string, skipped int) {
	if skipped > 0 {
		s.logger.Warn("Skipped rows without a name", zap.String("kind", kind), zap.String("input", name), zap.Int("count", skipped))
	}
}

// NewFileSource reads the registry from local CSV exports.
func NewFileSource(devicesPath, locationsPath string, fields reconcile.Fields, logger *zap.Logger) Source {
	return &csvSource{
		name: "csv",
		open: func(_ context.Context, name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
		devices:   devicesPath,
		locations: locationsPath,
		fields:    fields,
		logger:    logger,
	}
}

// NewBucketSource reads the registry from CSV exports stored in a bucket.
func NewBucketSource(client storage.Client, bucket, devicesObject, locationsObject string, fields reconcile.Fields, logger *zap.Logger) Source {
	return &csvSource{
		name: "bucket",
		open: func(ctx context.Context, name string) (io.ReadCloser, error) {
			return client.OpenObject(ctx, bucket, name)
		},
		check: func(ctx context.Context) error {
			exists, err := client.BucketExists(ctx, bucket)
			if err != nil {
				return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
			}
			if !exists {
				return fmt.Errorf("%s: %w", bucket, storage.ErrBucketNotFound)
			}
			return nil
		},
		devices:   devicesObject,
		locations: locationsObject,
		fields:    fields,
		logger:    logger,
	}
}
