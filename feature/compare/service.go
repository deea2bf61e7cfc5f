package compare

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cmdb-sync/core/logger"
	"cmdb-sync/feature/devices"
	"cmdb-sync/feature/locations"
	"cmdb-sync/feature/registry"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Catalog serves the monitoring platform's devices and site groups.
type Catalog interface {
	Devices(ctx context.Context) ([]devices.RemoteDevice, error)
	Groups(ctx context.Context) ([]locations.Group, error)
}

// Options tunes a comparison run.
type Options struct {
	Devices devices.Options
	// CountryAliases rewrites registry country names before hierarchy lookups.
	CountryAliases map[string]string
	// ReportTTL is how long Latest reuses a finished report. Zero always runs anew.
	ReportTTL time.Duration
}

// Service runs comparisons between the registry and the monitoring platform.
type Service struct {
	source    registry.Source
	catalog   Catalog
	hierarchy locations.HierarchySource
	opts      Options
	logger    *zap.Logger

	sf     singleflight.Group
	mu     sync.RWMutex
	latest *Report
	now    func() time.Time
}

// NewService creates a comparison service.
func NewService(source registry.Source, catalog Catalog, hierarchy locations.HierarchySource, opts Options, logger *zap.Logger) *Service {
	return &Service{
		source:    source,
		catalog:   catalog,
		hierarchy: hierarchy,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}
}

// Run performs one full comparison. Registry input problems degrade to empty
// sets; failures to read the device or group catalog abort the run.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	l := logger.WithRunID(s.logger, runID)

	l.Info("Loading registry", zap.String("source", s.source.Name()))
	snap, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	l.Info("Validating registry devices")
	reconciler := devices.NewReconciler(s.opts.Devices, l)
	inv := reconciler.Canonicalize(snap.Devices)

	l.Info("Identifying sites with addressed devices")
	siteSet := locations.BuildSites(inv.LocationKeys(), snap.Locations, s.opts.CountryAliases)
	if len(siteSet.UnknownLocations) > 0 {
		l.Warn("Devices reference unknown locations", zap.Strings("locations", siteSet.UnknownLocations))
	}
	if len(siteSet.DuplicateLocations) > 0 {
		l.Warn("Locations defined more than once, using first row", zap.Strings("locations", siteSet.DuplicateLocations))
	}

	l.Info("Comparing devices with the monitoring catalog")
	remote, err := s.catalog.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch device catalog: %w", err)
	}
	devCls := reconciler.Classify(inv, remote)

	l.Info("Comparing sites with monitoring groups")
	groups, err := s.catalog.Groups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}
	if len(groups) == 0 {
		l.Info("The group list returned by the monitoring platform is empty")
	}
	existence := locations.CompareExisting(siteSet.Sites, groups)

	l.Info("Comparing site locations with the geographic hierarchy")
	hierarchy := locations.NewResolver(s.hierarchy, l).Classify(ctx, siteSet.Sites)

	report := &Report{
		RunID:       runID,
		GeneratedAt: s.now().UTC(),
		Source:      s.source.Name(),
		Devices: DeviceReport{
			Rows:              len(snap.Devices),
			RemoteDevices:     len(remote),
			SkippedRemote:     devCls.SkippedRemote,
			Outcomes:          devCls.Outcomes,
			MultipleAddresses: multipleAddressGroups(inv),
			EmptyAddresses:    inv.EmptyAddresses,
			InvalidAddresses:  inv.InvalidAddresses,
		},
		Sites: SiteReport{
			Sites:              siteSet.Sites,
			DuplicateLocations: siteSet.DuplicateLocations,
			UnknownLocations:   siteSet.UnknownLocations,
			RemoteGroups:       len(groups),
			Existence:          existence,
			Hierarchy:          hierarchy,
		},
	}
	report.Summary = summarize(report)

	LogSummary(l, report)
	return report, nil
}

// Latest returns the most recent report while it is younger than the report TTL,
// otherwise it runs a new comparison. Concurrent callers share one run.
func (s *Service) Latest(ctx context.Context) (*Report, error) {
	if r := s.fresh(); r != nil {
		return r, nil
	}

	result, err, _ := s.sf.Do("report", func() (interface{}, error) {
		if r := s.fresh(); r != nil {
			return r, nil
		}

		// The run outlives any single caller's request.
		report, err := s.Run(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.latest = report
		s.mu.Unlock()
		return report, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Report), nil
}

func (s *Service) fresh() *Report {
	if s.opts.ReportTTL <= 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest != nil && s.now().Sub(s.latest.GeneratedAt) < s.opts.ReportTTL {
		return s.latest
	}
	return nil
}

// LogSummary writes the headline counts of a report to the logger.
func LogSummary(l *zap.Logger, r *Report) {
	s := r.Summary

	l.Info("Device comparison",
		zap.Int("rows", s.DeviceRows),
		zap.Int("devices", s.Devices),
		zap.Int("new", s.NewDevices),
		zap.Int("address_changed", s.AddressChanged),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("multiple_addresses", s.MultipleAddresses),
		zap.Int("empty_addresses", s.EmptyAddresses),
		zap.Int("invalid_addresses", s.InvalidAddresses),
	)

	counts := r.Sites.Hierarchy.Outcomes.Counts()
	fields := []zap.Field{
		zap.Int("sites", s.Sites),
		zap.Int("new_sites", s.NewSites),
		zap.Int("existing_sites", s.ExistingSites),
		zap.Int("coordinates_missing", s.CoordinatesMissing),
	}
	for _, outcome := range locations.SiteOutcomes() {
		fields = append(fields, zap.Int(string(outcome), counts[outcome]))
	}
	l.Info("Site comparison", fields...)

	lookups := r.Sites.Hierarchy.Lookups
	l.Debug("Hierarchy lookups",
		zap.Int("region_loads", lookups.RegionLoads),
		zap.Int("region_hits", lookups.RegionHits),
		zap.Int("city_loads", lookups.CityLoads),
		zap.Int("city_hits", lookups.CityHits),
	)
}
