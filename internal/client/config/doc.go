// Package config loads runtime configuration for uploadctl.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c / -config or
//     ASSETKEEPER_CONFIG.
//  3. Environment: ASSETKEEPER_SERVER, ASSETKEEPER_TOKEN,
//     ASSETKEEPER_STAGING_DIR.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-t string   access token
//	-s string   staging directory shared with the server
//	-i int      progress poll interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJ...",
//	  "staging_dir": "/srv/assetkeeper/staging",
//	  "poll_interval": "1s"
//	}
package config
