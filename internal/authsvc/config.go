package authsvc

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/filecatalog/internal/flagx"
	"github.com/dmitrijs2005/filecatalog/internal/timex"
)

// Config holds runtime settings for the session service.
type Config struct {
	EndpointAddrGRPC string
	MaxSessions      int
	SessionTTL       time.Duration
	JanitorInterval  time.Duration
}

func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50052"
	c.MaxSessions = 10000
	c.SessionTTL = 24 * time.Hour
	c.JanitorInterval = time.Minute
}

// JsonConfig is the DTO for the optional JSON config file. Durations accept
// either strings like "24h" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	MaxSessions      int            `json:"max_sessions"`
	SessionTTL       timex.Duration `json:"session_ttl"`
	JanitorInterval  timex.Duration `json:"janitor_interval"`
}

func parseJson(cfg *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	// Only fields present in the file override the defaults.
	if c.EndpointAddrGRPC != "" {
		cfg.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.MaxSessions > 0 {
		cfg.MaxSessions = c.MaxSessions
	}
	if c.SessionTTL.Duration > 0 {
		cfg.SessionTTL = time.Duration(c.SessionTTL.Duration)
	}
	if c.JanitorInterval.Duration > 0 {
		cfg.JanitorInterval = time.Duration(c.JanitorInterval.Duration)
	}
}

// LoadConfig builds a Config from defaults, an optional JSON file, and
// command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address
//	-m int      maximum number of concurrent sessions
//	-t int      session TTL, minutes (0 disables expiry)
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run server")
	fs.IntVar(&cfg.MaxSessions, "m", cfg.MaxSessions, "maximum number of sessions")
	ttl := fs.Int("t", int(cfg.SessionTTL.Minutes()), "session TTL (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*ttl) * time.Minute
	return cfg
}
