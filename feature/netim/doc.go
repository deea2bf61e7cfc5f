// Package netim is the client for the network-monitoring platform.
//
// It serves two roles: the hierarchy source consumed by the location resolver
// (countries, regions by country id, cities by region id) and the catalog of
// monitored devices and site groups.
//
// List responses carry their entries in an "items" array. A response without one
// is malformed: hierarchy calls return ErrMalformedPayload so the resolver treats
// the level as empty, while catalog calls log a warning and return an empty list.
// Transport and authentication errors are always returned to the caller.
package netim
