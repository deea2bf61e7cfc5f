// Package rest provides the minimal JSON-over-HTTP client used to talk to the asset
// registry's table API and to the network-monitoring platform.
//
// Requests are plain GETs with HTTP basic authentication. The transport carries the
// same strict connection, TLS handshake and response-header timeouts as the storage
// client. Nothing is retried: a failed request is reported once and the caller
// decides whether that aborts the run.
//
// Authentication failures unwrap to ErrUnauthorized:
//
//	body, err := client.Get(ctx, "devices", nil)
//	if errors.Is(err, rest.ErrUnauthorized) {
//	    // bad credentials
//	}
package rest
