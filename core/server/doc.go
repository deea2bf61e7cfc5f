// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// configuration structure: the listen port, the API key guarding every route and
// how long a finished comparison report is reused.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings.
package server
