package config

import "time"

// Config holds runtime settings for uploadctl.
//
// Fields:
//   - ServerEndpointAddr: host:port of the assetkeeper gRPC endpoint.
//   - AccessToken: bearer token sent as access_token metadata.
//   - StagingDir: directory shared with the server that put copies files into.
//   - PollInterval: how often put refreshes its progress line.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	StagingDir         string
	PollInterval       time.Duration
}

// GlobalFlags are the flags LoadConfig consumes; commands never see them.
var GlobalFlags = []string{"-a", "-t", "-s", "-i", "-c", "-config"}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.StagingDir = "staging"
	c.PollInterval = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
