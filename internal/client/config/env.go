package config

import "github.com/dmitrijs2005/assetkeeper/internal/flagx"

func parseEnv(cfg *Config) {
	flagx.EnvString("ASSETKEEPER_SERVER", &cfg.ServerEndpointAddr)
	flagx.EnvString("ASSETKEEPER_TOKEN", &cfg.AccessToken)
	flagx.EnvString("ASSETKEEPER_STAGING_DIR", &cfg.StagingDir)
}
