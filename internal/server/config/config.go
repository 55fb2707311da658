// Package config handles configuration for the catalog server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the catalog server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: document store DSN. A mongodb:// DSN selects the Mongo
//     backend, a postgres:// DSN the Postgres backend; an empty DSN keeps
//     everything in memory.
//   - DatabaseName: database name used by the Mongo backend.
//   - AuthServiceAddr: address of the session/identity service.
//   - FileServiceAddr: address of the external file content service.
type Config struct {
	EndpointAddrGRPC string
	DatabaseDSN      string
	DatabaseName     string
	AuthServiceAddr  string
	FileServiceAddr  string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.DatabaseName = "catalog_db"
	c.AuthServiceAddr = "127.0.0.1:50052"
	c.FileServiceAddr = "127.0.0.1:50053"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
