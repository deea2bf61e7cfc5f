package registry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"cmdb-sync/core/reconcile"
	"cmdb-sync/core/rest"
	"cmdb-sync/core/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Table API resources.
const (
	DevicesTablePath   = "api/now/table/cmdb_ci"
	LocationsTablePath = "api/now/table/cmn_location"
)

// APISource reads the registry through its table API.
// Configuration items are filtered by the include and exclude filters.
type APISource struct {
	client  rest.Getter
	include []Filter
	exclude []Filter
	fields  reconcile.Fields
	logger  *zap.Logger
}

// NewAPISource creates a table API source.
func NewAPISource(client rest.Getter, include, exclude []Filter, fields reconcile.Fields, logger *zap.Logger) *APISource {
	return &APISource{
		client:  client,
		include: include,
		exclude: exclude,
		fields:  fields,
		logger:  logger,
	}
}

func (s *APISource) Name() string {
	return "api"
}

// Load fetches configuration items and locations. Any request failure aborts the run.
func (s *APISource) Load(ctx context.Context) (*Snapshot, error) {
	items, err := s.fetch(ctx, DevicesTablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch configuration items: %w", err)
	}
	s.logger.Info("Fetched configuration items", zap.Int("count", len(items)))

	s.logger.Info("Applying configuration item filters",
		zap.Int("include", len(s.include)),
		zap.Int("exclude", len(s.exclude)),
	)
	items = ApplyFilters(items, s.include, s.exclude)

	locs, err := s.fetch(ctx, LocationsTablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}

	devices, skippedDevices := DevicesFromRows(cleanRows(items), s.fields)
	locations, skippedLocations := LocationsFromRows(cleanRows(locs), s.fields)
	if skippedDevices+skippedLocations > 0 {
		s.logger.Warn("Skipped records without a name",
			zap.Int("devices", skippedDevices),
			zap.Int("locations", skippedLocations),
		)
	}

	s.logger.Info("Loaded registry from API",
		zap.Int("devices", len(devices)),
		zap.Int("locations", len(locations)),
	)
	return &Snapshot{Devices: devices, Locations: locations}, nil
}

func (s *APISource) fetch(ctx context.Context, path string) ([]map[string]any, error) {
	query := url.Values{"sysparm_display_value": {"all"}}
	body, err := s.client.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return parseTableRecords(body)
}

// parseTableRecords extracts the records of a table API response. The records are
// normally wrapped in "result"; a bare array is accepted too.
func parseTableRecords(body []byte) ([]map[string]any, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("response is not valid JSON")
	}

	records := gjson.GetBytes(body, "result")
	if !records.Exists() {
		records = gjson.ParseBytes(body)
	}
	if !records.IsArray() {
		return nil, errors.New("response does not contain a record list")
	}

	var out []map[string]any
	records.ForEach(func(_, rec gjson.Result) bool {
		if obj, ok := rec.Value().(map[string]any); ok {
			out = append(out, obj)
		}
		return true
	})
	return out, nil
}

func cleanRows(items []map[string]any) []map[string]string {
	rows := make([]map[string]string, 0, len(items))
	for _, item := range items {
		row := make(map[string]string, len(item))
		for k, v := range item {
			row[k] = utils.Clean(v)
		}
		rows = append(rows, row)
	}
	return rows
}
