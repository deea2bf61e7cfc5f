package locations

import (
	"context"
	"strings"

	"cmdb-sync/core/reconcile"

	"go.uber.org/zap"
)

// LookupStats counts remote hierarchy fetches and cache hits for one run.
type LookupStats struct {
	CountryLoads int `json:"country_loads"`
	RegionLoads  int `json:"region_loads"`
	RegionHits   int `json:"region_hits"`
	CityLoads    int `json:"city_loads"`
	CityHits     int `json:"city_hits"`
}

// SiteClassification is the result of classifying sites against the hierarchy.
type SiteClassification struct {
	Outcomes *reconcile.Classification `json:"outcomes"`
	// CoordinatesMissing lists sites with a blank latitude or longitude,
	// whatever their outcome.
	CoordinatesMissing []string    `json:"coordinates_missing"`
	Lookups            LookupStats `json:"lookups"`
}

// Resolver classifies sites against the remote country, region and city hierarchy.
type Resolver struct {
	source HierarchySource
	logger *zap.Logger
}

// NewResolver creates a resolver over the given hierarchy source.
func NewResolver(source HierarchySource, logger *zap.Logger) *Resolver {
	return &Resolver{source: source, logger: logger}
}

// hierarchyRun holds the lookups of one Classify call. Regions are cached by
// country name and cities by region name; the bare-name keys mean two countries
// sharing a region name share one cached city list.
type hierarchyRun struct {
	countries []Country
	regions   *reconcile.RunCache[Region]
	cities    *reconcile.RunCache[City]
}

// Classify assigns each site exactly one hierarchy outcome, evaluating country,
// region and city top-down. At every level the first entry with an exactly equal
// name wins. A level whose list cannot be fetched is treated as empty.
func (r *Resolver) Classify(ctx context.Context, sites []SiteCandidate) *SiteClassification {
	result := &SiteClassification{
		Outcomes:           reconcile.NewClassification(SiteOutcomes()...),
		CoordinatesMissing: []string{},
	}
	if len(sites) == 0 {
		return result
	}

	run := &hierarchyRun{
		countries: r.loadCountries(ctx),
		regions:   reconcile.NewRunCache[Region](),
		cities:    reconcile.NewRunCache[City](),
	}
	result.Lookups.CountryLoads = 1

	for _, site := range sites {
		if site.CoordinatesMissing() {
			result.CoordinatesMissing = append(result.CoordinatesMissing, site.Name)
		}
		outcome := r.classifySite(ctx, run, site)
		result.Outcomes.Add(outcome, site.Name)
		r.logger.Debug("Classified site", zap.String("site", site.Name), zap.String("outcome", string(outcome)))
	}

	result.Lookups.RegionLoads = run.regions.Loads()
	result.Lookups.RegionHits = run.regions.Hits()
	result.Lookups.CityLoads = run.cities.Loads()
	result.Lookups.CityHits = run.cities.Hits()
	return result
}

func (r *Resolver) classifySite(ctx context.Context, run *hierarchyRun, site SiteCandidate) reconcile.Outcome {
	if isBlank(site.Country) {
		return OutcomeCountryEmpty
	}
	country, ok := findCountry(run.countries, site.Country)
	if !ok {
		return OutcomeCountryNotFound
	}

	if isBlank(site.Region) {
		return OutcomeRegionEmpty
	}
	regions, err := run.regions.GetOrLoad(country.Name, func() ([]Region, error) {
		return r.source.RegionsByCountry(ctx, country.ID)
	})
	if err != nil {
		r.logger.Warn("Failed to fetch regions, treating as empty",
			zap.String("country", country.Name), zap.String("country_id", country.ID), zap.Error(err))
	}
	region, ok := findRegion(regions, site.Region)
	if !ok {
		return OutcomeRegionNotFound
	}

	if isBlank(site.City) {
		return OutcomeCityEmpty
	}
	cities, err := run.cities.GetOrLoad(region.Name, func() ([]City, error) {
		return r.source.CitiesByRegion(ctx, region.ID)
	})
	if err != nil {
		r.logger.Warn("Failed to fetch cities, treating as empty",
			zap.String("region", region.Name), zap.String("region_id", region.ID), zap.Error(err))
	}
	if !hasCity(cities, site.City) {
		return OutcomeCityNotFound
	}
	return OutcomeMatch
}

func (r *Resolver) loadCountries(ctx context.Context) []Country {
	countries, err := r.source.Countries(ctx)
	if err != nil {
		r.logger.Warn("Failed to fetch countries, treating as empty", zap.Error(err))
		return nil
	}
	r.logger.Info("Fetched countries", zap.Int("count", len(countries)))
	return countries
}

func findCountry(countries []Country, name string) (Country, bool) {
	for _, c := range countries {
		if c.Name == name {
			return c, true
		}
	}
	return Country{}, false
}

func findRegion(regions []Region, name string) (Region, bool) {
	for _, r := range regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

func hasCity(cities []City, name string) bool {
	for _, c := range cities {
		if c.Name == name {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
