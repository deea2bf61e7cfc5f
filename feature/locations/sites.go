package locations

import (
	"fmt"
	"strings"

	"cmdb-sync/feature/registry"
)

// SiteSet is the site list derived from device location keys.
type SiteSet struct {
	Sites []SiteCandidate `json:"sites"`
	// DuplicateLocations lists referenced location names that appear on more than
	// one location row. The first row was used.
	DuplicateLocations []string `json:"duplicate_locations"`
	// UnknownLocations lists location keys with no location row.
	UnknownLocations []string `json:"unknown_locations"`
}

// Names returns the site names in order.
func (s *SiteSet) Names() []string {
	names := make([]string, len(s.Sites))
	for i, site := range s.Sites {
		names[i] = site.Name
	}
	return names
}

// BuildSites joins location keys to location rows by exact name. Keys keep their
// order; the first row with a given name wins. Country names found in aliases are
// replaced by their alias target.
func BuildSites(keys []string, rows []registry.LocationRecord, aliases map[string]string) *SiteSet {
	byName := make(map[string]registry.LocationRecord, len(rows))
	rowCount := make(map[string]int, len(rows))
	for _, row := range rows {
		if _, ok := byName[row.Name]; !ok {
			byName[row.Name] = row
		}
		rowCount[row.Name]++
	}

	set := &SiteSet{
		Sites:              []SiteCandidate{},
		DuplicateLocations: []string{},
		UnknownLocations:   []string{},
	}
	for _, key := range keys {
		row, ok := byName[key]
		if !ok {
			set.UnknownLocations = append(set.UnknownLocations, key)
			continue
		}
		if rowCount[key] > 1 {
			set.DuplicateLocations = append(set.DuplicateLocations, key)
		}

		country := row.Country
		if alias, ok := aliases[country]; ok {
			country = alias
		}
		set.Sites = append(set.Sites, SiteCandidate{
			Name:      row.Name,
			City:      row.City,
			Region:    row.Region,
			Country:   country,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		})
	}
	return set
}

// ParseAliases parses "From=To" pairs into an alias map.
func ParseAliases(pairs []string) (map[string]string, error) {
	aliases := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		from, to, ok := strings.Cut(pair, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid country alias %q, expected From=To", pair)
		}
		aliases[from] = to
	}
	return aliases, nil
}
