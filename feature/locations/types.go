package locations

import (
	"context"
	"strings"

	"cmdb-sync/core/reconcile"
)

// Site outcomes. Every site lands in exactly one of them.
const (
	OutcomeMatch           reconcile.Outcome = "match_all"
	OutcomeCountryEmpty    reconcile.Outcome = "country_empty"
	OutcomeCountryNotFound reconcile.Outcome = "country_not_found"
	OutcomeRegionEmpty     reconcile.Outcome = "region_empty"
	OutcomeRegionNotFound  reconcile.Outcome = "region_not_found"
	OutcomeCityEmpty       reconcile.Outcome = "city_empty"
	OutcomeCityNotFound    reconcile.Outcome = "city_not_found"
)

// Site existence outcomes against the remote group list.
const (
	OutcomeNewSite      reconcile.Outcome = "new_site"
	OutcomeExistingSite reconcile.Outcome = "existing_site"
)

// SiteOutcomes lists the hierarchy outcomes in report order.
func SiteOutcomes() []reconcile.Outcome {
	return []reconcile.Outcome{
		OutcomeMatch,
		OutcomeCountryEmpty,
		OutcomeCountryNotFound,
		OutcomeRegionEmpty,
		OutcomeRegionNotFound,
		OutcomeCityEmpty,
		OutcomeCityNotFound,
	}
}

// SiteCandidate is a location referenced by at least one addressed device.
type SiteCandidate struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// CoordinatesMissing reports whether latitude or longitude is blank.
func (s SiteCandidate) CoordinatesMissing() bool {
	return strings.TrimSpace(s.Latitude) == "" || strings.TrimSpace(s.Longitude) == ""
}

// Country is an entry of the remote country list.
type Country struct {
	ID   string
	Name string
}

// Region is an entry of a country's region list.
type Region struct {
	ID   string
	Name string
}

// City is an entry of a region's city list.
type City struct {
	ID   string
	Name string
}

// Group is a remote site or device group.
type Group struct {
	ID   string
	Name string
}

// HierarchySource serves the remote country, region and city lists.
type HierarchySource interface {
	Countries(ctx context.Context) ([]Country, error)
	RegionsByCountry(ctx context.Context, countryID string) ([]Region, error)
	CitiesByRegion(ctx context.Context, regionID string) ([]City, error)
}
