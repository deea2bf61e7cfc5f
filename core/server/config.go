package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReportTTLSeconds is how long a finished comparison is served before a new
	// run is started. Zero runs a fresh comparison for every report request.
	ReportTTLSeconds int `mapstructure:"report_ttl_seconds" default:"0"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}
