// Package compare orchestrates a comparison between the asset registry and the
// monitoring platform and presents the result.
//
// A run loads the registry snapshot, canonicalizes devices, derives sites from
// the locations of addressed devices, classifies devices against the device
// catalog, checks site names against the group list and finally resolves every
// site against the geographic hierarchy. Each run gets its own run id and its own
// hierarchy caches.
//
// # Outputs
//
//   - Render writes the console report, optionally truncating lists.
//   - The Report value marshals to JSON for --json and the HTTP API.
//   - LogSummary writes the headline counts through zap.
//
// # HTTP API
//
// The feature exposes GET /compare/report, /compare/devices and /compare/sites.
// Concurrent requests are collapsed onto one run with singleflight, and a finished
// report may be reused for the configured TTL.
package compare
