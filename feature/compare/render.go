package compare

import (
	"fmt"
	"io"
	"strings"

	"cmdb-sync/core/reconcile"
	"cmdb-sync/feature/devices"
	"cmdb-sync/feature/locations"
)

// RenderOptions controls console rendering.
type RenderOptions struct {
	// Summary truncates every list to Limit entries.
	Summary bool
	// Limit is the truncation length in summary mode.
	Limit int
}

// DefaultLimit is the number of names a summary list shows.
const DefaultLimit = 10

// siteMessages describes each hierarchy outcome, in rendering order.
var siteMessages = []struct {
	outcome reconcile.Outcome
	text    string
}{
	{locations.OutcomeMatch, "had a country, region and city found in the monitoring platform"},
	{locations.OutcomeCityNotFound, "had a country and region found, but the city is not defined"},
	{locations.OutcomeCityEmpty, "had a country and region found, but no city in the registry"},
	{locations.OutcomeRegionNotFound, "had a country found, but the region is not defined"},
	{locations.OutcomeRegionEmpty, "had a country found, but no region in the registry"},
	{locations.OutcomeCountryNotFound, "have a country that is not defined"},
	{locations.OutcomeCountryEmpty, "have no country in the registry"},
}

// Render writes the human-readable report.
func Render(w io.Writer, r *Report, opts RenderOptions) error {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	p := &printer{w: w, opts: opts}

	p.line("")
	p.line("Registry to Monitoring Comparison Report")
	p.line(strings.Repeat("-", 72))
	p.linef("Run %s at %s, registry source: %s", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"), r.Source)

	p.line("")
	p.linef("Step 1 of 6: Read %d device row(s) and %d site candidate(s) from the registry", r.Devices.Rows, len(r.Sites.Sites))

	p.line("Step 2 of 6: Validating registry devices")
	p.groups(r.Devices.MultipleAddresses, "device(s) that have multiple listed IP addresses")
	p.groups(r.Devices.EmptyAddresses, "device(s) without listed IP addresses")
	p.groups(r.Devices.InvalidAddresses, "device(s) with invalid IP addresses")

	p.line("Step 3 of 6: Identifying sites that have actively polled devices")
	p.names(r.Sites.UnknownLocations, "location(s) referenced by devices are not defined in the registry")
	p.names(r.Sites.DuplicateLocations, "location(s) are defined more than once; the first definition was used")

	p.line("Step 4 of 6: Comparing devices with the monitoring catalog")
	p.linef("The monitoring catalog holds %d device(s).", r.Devices.RemoteDevices)
	p.always(r.Devices.Outcomes.Names(devices.OutcomeNew), "device(s) with IP addresses do not exist in the monitoring platform")
	p.names(r.Devices.Outcomes.Names(devices.OutcomeAddressChanged), "device(s) exist in the monitoring platform, but have different access addresses")
	p.names(r.Devices.Outcomes.Names(devices.OutcomeUnchanged), "device(s) have matching names and access addresses in the monitoring platform")

	p.line("")
	p.line("Step 5 of 6: Comparing sites with monitoring groups")
	if r.Sites.RemoteGroups == 0 {
		p.line("The list of groups returned by the monitoring platform was empty.")
	}
	p.always(r.Sites.Existence.Names(locations.OutcomeNewSite), "site(s) are associated with devices and are not defined in the monitoring platform")
	existing := r.Sites.Existence.Names(locations.OutcomeExistingSite)
	if len(existing) == 0 {
		p.line("")
		p.line("No sites matched existing group names in the monitoring platform.")
	} else {
		p.names(existing, "site(s) have already been defined in the monitoring platform")
	}

	p.line("")
	p.line("Step 6 of 6: Comparing site locations with the geographic hierarchy")
	for _, m := range siteMessages {
		p.names(r.Sites.Hierarchy.Outcomes.Names(m.outcome), "site(s) "+m.text)
	}
	p.names(r.Sites.Hierarchy.CoordinatesMissing, "site(s) are missing latitude or longitude")
	p.line("")

	return p.err
}

// printer writes lines and remembers the first write error.
type printer struct {
	w    io.Writer
	opts RenderOptions
	err  error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// names prints a counted list when it is not empty.
func (p *printer) names(list []string, what string) {
	if len(list) == 0 {
		return
	}
	p.always(list, what)
}

// always prints a counted list, even when empty.
func (p *printer) always(list []string, what string) {
	p.line("")
	p.linef("There are %d %s.", len(list), what)
	shown := list
	if p.opts.Summary && len(list) > p.opts.Limit {
		p.linef("Displaying the first %d:", p.opts.Limit)
		shown = reconcile.Truncate(list, p.opts.Limit)
	}
	for _, name := range shown {
		p.linef("  %s", name)
	}
}

// groups prints device groups; in full mode every row is listed.
func (p *printer) groups(list []devices.AddressGroup, what string) {
	if len(list) == 0 {
		return
	}
	p.line("")
	p.linef("There are %d %s.", len(list), what)
	if p.opts.Summary && len(list) > p.opts.Limit {
		p.linef("Displaying the first %d:", p.opts.Limit)
		for _, g := range list[:p.opts.Limit] {
			p.linef("  %s", g.Name)
		}
		return
	}
	for _, g := range list {
		p.linef("  %s", g.Name)
		for _, rec := range g.Records {
			p.linef("    %s, %s, %s, %s", rec.Name, rec.CMDBID, rec.Address, rec.Location)
		}
	}
}
