package compare

import (
	"time"

	"cmdb-sync/core/reconcile"
	"cmdb-sync/feature/devices"
	"cmdb-sync/feature/locations"
)

// Report is the outcome of one comparison run.
type Report struct {
	RunID       string       `json:"run_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Source      string       `json:"source"`
	Devices     DeviceReport `json:"devices"`
	Sites       SiteReport   `json:"sites"`
	Summary     Summary      `json:"summary"`
}

// DeviceReport holds the device diagnostics and classification.
type DeviceReport struct {
	// Rows is the number of device rows read from the registry.
	Rows int `json:"rows"`
	// RemoteDevices is the size of the monitoring catalog.
	RemoteDevices int                       `json:"remote_devices"`
	SkippedRemote int                       `json:"skipped_remote"`
	Outcomes      *reconcile.Classification `json:"outcomes"`
	// MultipleAddresses lists every addressed row of names with several rows.
	MultipleAddresses []devices.AddressGroup `json:"multiple_addresses"`
	EmptyAddresses    []devices.AddressGroup `json:"empty_addresses"`
	InvalidAddresses  []devices.AddressGroup `json:"invalid_addresses"`
}

// SiteReport holds the site diagnostics and classifications.
type SiteReport struct {
	Sites              []locations.SiteCandidate     `json:"sites"`
	DuplicateLocations []string                      `json:"duplicate_locations"`
	UnknownLocations   []string                      `json:"unknown_locations"`
	RemoteGroups       int                           `json:"remote_groups"`
	Existence          *reconcile.Classification     `json:"existence"`
	Hierarchy          *locations.SiteClassification `json:"hierarchy"`
}

// Summary holds the headline counts of a report.
type Summary struct {
	DeviceRows         int `json:"device_rows"`
	Devices            int `json:"devices"`
	NewDevices         int `json:"new_devices"`
	AddressChanged     int `json:"address_changed"`
	Unchanged          int `json:"unchanged"`
	MultipleAddresses  int `json:"multiple_addresses"`
	EmptyAddresses     int `json:"empty_addresses"`
	InvalidAddresses   int `json:"invalid_addresses"`
	Sites              int `json:"sites"`
	NewSites           int `json:"new_sites"`
	ExistingSites      int `json:"existing_sites"`
	SitesMatched       int `json:"sites_matched"`
	SitesUnresolved    int `json:"sites_unresolved"`
	CoordinatesMissing int `json:"coordinates_missing"`
}

func summarize(r *Report) Summary {
	matched := r.Sites.Hierarchy.Outcomes.Count(locations.OutcomeMatch)
	return Summary{
		DeviceRows:         r.Devices.Rows,
		Devices:            r.Devices.Outcomes.Total(),
		NewDevices:         r.Devices.Outcomes.Count(devices.OutcomeNew),
		AddressChanged:     r.Devices.Outcomes.Count(devices.OutcomeAddressChanged),
		Unchanged:          r.Devices.Outcomes.Count(devices.OutcomeUnchanged),
		MultipleAddresses:  len(r.Devices.MultipleAddresses),
		EmptyAddresses:     len(r.Devices.EmptyAddresses),
		InvalidAddresses:   len(r.Devices.InvalidAddresses),
		Sites:              len(r.Sites.Sites),
		NewSites:           r.Sites.Existence.Count(locations.OutcomeNewSite),
		ExistingSites:      r.Sites.Existence.Count(locations.OutcomeExistingSite),
		SitesMatched:       matched,
		SitesUnresolved:    r.Sites.Hierarchy.Outcomes.Total() - matched,
		CoordinatesMissing: len(r.Sites.Hierarchy.CoordinatesMissing),
	}
}

// multipleAddressGroups lists the sibling rows of every name with several rows.
func multipleAddressGroups(inv *devices.Inventory) []devices.AddressGroup {
	groups := make([]devices.AddressGroup, 0, len(inv.MultipleAddresses))
	byName := make(map[string]*devices.CanonicalDevice, len(inv.Canonical))
	for _, d := range inv.Canonical {
		byName[d.Name] = d
	}
	for _, name := range inv.MultipleAddresses {
		if d, ok := byName[name]; ok {
			groups = append(groups, devices.AddressGroup{Name: name, Records: d.Siblings})
		}
	}
	return groups
}
