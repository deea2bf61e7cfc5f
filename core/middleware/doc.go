// Package middleware groups the Fiber middleware of the serve command.
//
//   - auth: rejects requests lacking the configured X-API-Key header. An empty key
//     leaves the API open, which suits a loopback-only deployment.
//   - rayid: tags each request with an X-Ray-ID (kept from the caller when present)
//     so handler logs and the response can be correlated.
//
// rayid must be registered before any middleware that logs.
package middleware
