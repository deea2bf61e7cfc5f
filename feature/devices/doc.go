// Package devices reconciles registry device rows against the monitoring catalog.
//
// Canonicalize sets aside rows without a usable address, groups the rest by name
// and picks the first row of each name, in input order, as the canonical device.
// Every other row of that name stays reachable as a sibling, and names with more
// than one row are listed as having multiple addresses.
//
// Classify then matches each canonical device by exact name to the first catalog
// entry of that name:
//
//   - no entry: new
//   - entry whose access address equals any sibling address: unchanged
//   - otherwise: address_changed
//
// The catalog address is the top-level access address, or the address nested in
// the access info object when the former is blank.
package devices
