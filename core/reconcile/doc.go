// Package reconcile holds the building blocks shared by the device and location
// reconciliation features.
//
// # Classification
//
// A Classification assigns subject names (device or site names) to one bucket of a
// fixed outcome set. Buckets keep processing order and encode to JSON with their
// keys in declaration order, so reports are stable between runs over the same input.
//
// # Fields
//
// Fields enumerates the registry column names a loader reads. Two profiles are
// provided: CSVFields for spreadsheet exports and APIFields for the table API and
// its database mirror.
//
// # RunCache
//
// RunCache memoizes remote child lists (regions of a country, cities of a region)
// for one run. It bounds the number of remote calls; it does not add concurrency.
//
//	regions := reconcile.NewRunCache[locations.Region]()
//	items, err := regions.GetOrLoad(country.Name, func() ([]locations.Region, error) {
//	    return source.RegionsByCountry(ctx, country.ID)
//	})
package reconcile
