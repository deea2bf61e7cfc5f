package devices

import (
	"strings"

	"cmdb-sync/core/reconcile"
	"cmdb-sync/feature/registry"
)

// Device outcomes. Every canonical device lands in exactly one of them.
const (
	OutcomeNew            reconcile.Outcome = "new"
	OutcomeAddressChanged reconcile.Outcome = "address_changed"
	OutcomeUnchanged      reconcile.Outcome = "unchanged"
)

// DeviceOutcomes lists the device outcomes in report order.
func DeviceOutcomes() []reconcile.Outcome {
	return []reconcile.Outcome{OutcomeNew, OutcomeAddressChanged, OutcomeUnchanged}
}

// Options tunes how raw rows are canonicalized.
type Options struct {
	// EmptyAddress is the sentinel the registry writes for "no address".
	// Blank addresses are always treated as empty.
	EmptyAddress string
	// ValidateAddresses moves rows whose address is not a usable IPv4 or IPv6
	// address to the invalid-address group.
	ValidateAddresses bool
}

// CanonicalDevice is the single representative of all rows sharing a name.
// The embedded record is the first addressed row in input order.
type CanonicalDevice struct {
	registry.DeviceRecord
	// Siblings holds every addressed row with this name, the chosen one first.
	Siblings []registry.DeviceRecord `json:"siblings"`
}

// Addresses returns the addresses of all siblings in input order.
func (d *CanonicalDevice) Addresses() []string {
	addrs := make([]string, len(d.Siblings))
	for i, s := range d.Siblings {
		addrs[i] = s.Address
	}
	return addrs
}

// HasAddress reports whether any sibling carries addr. Surrounding whitespace is
// ignored on both sides.
func (d *CanonicalDevice) HasAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	for _, s := range d.Siblings {
		if strings.TrimSpace(s.Address) == addr {
			return true
		}
	}
	return false
}

// AddressGroup collects the rows of one name excluded from matching.
type AddressGroup struct {
	Name    string                  `json:"name"`
	Records []registry.DeviceRecord `json:"records"`
}

// RemoteDevice is a device of the monitoring platform's catalog.
type RemoteDevice struct {
	Name string `json:"name"`
	// AccessAddress is the top-level access address.
	AccessAddress string `json:"access_address"`
	// AccessInfoAddress is the access address nested in the access info object.
	AccessInfoAddress string `json:"access_info_address"`
}

// ResolvedAddress returns the trimmed top-level access address, falling back to
// the nested access info address when the former is blank.
func (r RemoteDevice) ResolvedAddress() string {
	if addr := strings.TrimSpace(r.AccessAddress); addr != "" {
		return addr
	}
	return strings.TrimSpace(r.AccessInfoAddress)
}
