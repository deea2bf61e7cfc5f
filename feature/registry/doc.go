// Package registry loads devices and locations from the asset registry.
//
// The registry can be read from four places: CSV exports on disk, CSV exports in an
// object storage bucket, a MySQL mirror of its tables, or its table API. All of them
// produce the same Snapshot of DeviceRecord and LocationRecord values, with names and
// values trimmed at this boundary.
//
// Column names come from a reconcile.Fields value so spreadsheet headers and API field
// names share one code path. A missing required column is reported as ErrMissingColumn.
//
// Exports degrade: an unreadable file, object or header yields an empty set and a
// warning. The database and the API are live systems, so their failures abort the run.
package registry
