package devices

import (
	"strings"

	"cmdb-sync/core/reconcile"
	"cmdb-sync/feature/registry"

	"go.uber.org/zap"
)

// Inventory is the deduplicated view of the registry's device rows.
type Inventory struct {
	// Canonical holds one device per distinct name, in first-appearance order.
	Canonical []*CanonicalDevice
	// MultipleAddresses lists names with more than one addressed row.
	MultipleAddresses []string
	// EmptyAddresses groups rows with a blank or sentinel address.
	EmptyAddresses []AddressGroup
	// InvalidAddresses groups rows rejected by address validation.
	InvalidAddresses []AddressGroup
}

// LocationKeys returns the distinct non-blank locations of the canonical devices,
// in first-appearance order.
func (inv *Inventory) LocationKeys() []string {
	seen := make(map[string]bool)
	keys := []string{}
	for _, d := range inv.Canonical {
		loc := strings.TrimSpace(d.Location)
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		keys = append(keys, loc)
	}
	return keys
}

// DeviceClassification is the result of matching canonical devices to the catalog.
type DeviceClassification struct {
	Outcomes          *reconcile.Classification `json:"outcomes"`
	MultipleAddresses []string                  `json:"multiple_addresses"`
	// SkippedRemote counts catalog entries ignored for lacking a name.
	SkippedRemote int `json:"skipped_remote"`
}

// Reconciler deduplicates registry devices and classifies them against the
// monitoring catalog.
type Reconciler struct {
	opts   Options
	logger *zap.Logger
}

// NewReconciler creates a reconciler.
func NewReconciler(opts Options, logger *zap.Logger) *Reconciler {
	return &Reconciler{opts: opts, logger: logger}
}

// Reconcile canonicalizes raw rows and classifies the result against remote.
func (r *Reconciler) Reconcile(raw []registry.DeviceRecord, remote []RemoteDevice) (*Inventory, *DeviceClassification) {
	inv := r.Canonicalize(raw)
	return inv, r.Classify(inv, remote)
}

// Canonicalize groups rows by name. Rows without a usable address are set aside;
// of the rest, the first row of each name becomes the canonical device.
func (r *Reconciler) Canonicalize(raw []registry.DeviceRecord) *Inventory {
	inv := &Inventory{
		Canonical:         []*CanonicalDevice{},
		MultipleAddresses: []string{},
		EmptyAddresses:    []AddressGroup{},
		InvalidAddresses:  []AddressGroup{},
	}

	byName := make(map[string]*CanonicalDevice)
	empty := newGrouper()
	invalid := newGrouper()

	for _, rec := range raw {
		name := strings.TrimSpace(rec.Name)
		rec.Name = name
		if r.isEmptyAddress(rec.Address) {
			empty.add(rec)
			continue
		}
		if r.opts.ValidateAddresses && !ValidAddress(strings.TrimSpace(rec.Address)) {
			invalid.add(rec)
			continue
		}

		if dev, ok := byName[name]; ok {
			dev.Siblings = append(dev.Siblings, rec)
			if len(dev.Siblings) == 2 {
				inv.MultipleAddresses = append(inv.MultipleAddresses, name)
			}
			continue
		}
		dev := &CanonicalDevice{DeviceRecord: rec, Siblings: []registry.DeviceRecord{rec}}
		byName[name] = dev
		inv.Canonical = append(inv.Canonical, dev)
	}

	inv.EmptyAddresses = empty.groups()
	inv.InvalidAddresses = invalid.groups()

	r.logger.Info("Canonicalized registry devices",
		zap.Int("rows", len(raw)),
		zap.Int("devices", len(inv.Canonical)),
		zap.Int("multiple_addresses", len(inv.MultipleAddresses)),
		zap.Int("empty_addresses", len(inv.EmptyAddresses)),
		zap.Int("invalid_addresses", len(inv.InvalidAddresses)),
	)
	return inv
}

// Classify matches each canonical device to the first catalog entry with an
// exactly equal trimmed name. Unmatched devices are new; matched devices are
// unchanged when any sibling address equals the catalog address.
func (r *Reconciler) Classify(inv *Inventory, remote []RemoteDevice) *DeviceClassification {
	result := &DeviceClassification{
		Outcomes:          reconcile.NewClassification(DeviceOutcomes()...),
		MultipleAddresses: inv.MultipleAddresses,
	}

	index := make(map[string]RemoteDevice, len(remote))
	for _, rd := range remote {
		name := strings.TrimSpace(rd.Name)
		if name == "" {
			result.SkippedRemote++
			continue
		}
		if _, ok := index[name]; !ok {
			index[name] = rd
		}
	}
	if result.SkippedRemote > 0 {
		r.logger.Warn("Skipped catalog devices without a name", zap.Int("count", result.SkippedRemote))
	}

	for _, dev := range inv.Canonical {
		rd, ok := index[dev.Name]
		switch {
		case !ok:
			result.Outcomes.Add(OutcomeNew, dev.Name)
		case dev.HasAddress(rd.ResolvedAddress()):
			result.Outcomes.Add(OutcomeUnchanged, dev.Name)
		default:
			result.Outcomes.Add(OutcomeAddressChanged, dev.Name)
			r.logger.Debug("Access address differs",
				zap.String("device", dev.Name),
				zap.Strings("registry", dev.Addresses()),
				zap.String("catalog", rd.ResolvedAddress()),
			)
		}
	}
	return result
}

func (r *Reconciler) isEmptyAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	return addr == "" || (r.opts.EmptyAddress != "" && addr == r.opts.EmptyAddress)
}

// grouper collects rows by name, keeping first-appearance order.
type grouper struct {
	order []string
	rows  map[string][]registry.DeviceRecord
}

func newGrouper() *grouper {
	return &grouper{rows: make(map[string][]registry.DeviceRecord)}
}

func (g *grouper) add(rec registry.DeviceRecord) {
	if _, ok := g.rows[rec.Name]; !ok {
		g.order = append(g.order, rec.Name)
	}
	g.rows[rec.Name] = append(g.rows[rec.Name], rec)
}

func (g *grouper) groups() []AddressGroup {
	out := make([]AddressGroup, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, AddressGroup{Name: name, Records: g.rows[name]})
	}
	return out
}
