package rest

// Config holds connection settings for a JSON REST endpoint.
type Config struct {
	// BaseURL is the scheme, host and base path of the API (e.g., https://netim:8543/api/netim/v1).
	BaseURL string
	// Username for HTTP basic authentication.
	Username string
	// Password for HTTP basic authentication.
	Password string
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
}
