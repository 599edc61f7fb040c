package config

import "time"

// Config holds runtime settings for the DraftKeeper CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DebounceInterval: quiet period after the last keystroke before an edit
//     is checkpointed.
//   - LocalDBPath: location of the SQLite file holding the offline queue.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DebounceInterval    time.Duration
	LocalDBPath         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DebounceInterval = 750 * time.Millisecond
	c.LocalDBPath = "drafts.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
