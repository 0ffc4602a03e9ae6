package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/assetkeeper/internal/flagx"
	"github.com/dmitrijs2005/assetkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell an
// explicit false or zero apart from an omitted key; omitted keys leave the
// current value alone.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	LogLevel                    string         `json:"log_level"`

	S3RootUser       string `json:"s3_root_user"`
	S3RootPassword   string `json:"s3_root_password"`
	S3Bucket         string `json:"s3_bucket"`
	S3Region         string `json:"s3_region"`
	S3BaseEndpoint   string `json:"s3_base_endpoint"`
	S3UsePathStyle   *bool  `json:"s3_use_path_style"`
	S3PresignedParts *bool  `json:"s3_presigned_parts"`

	MaxConcurrency  int            `json:"max_concurrency"`
	ToleranceFactor float64        `json:"tolerance_factor"`
	SmallTierBytes  int64          `json:"small_tier_bytes"`
	LargeTierBytes  int64          `json:"large_tier_bytes"`
	PartRetries     *int           `json:"part_retries"`
	RetryBaseDelay  timex.Duration `json:"retry_base_delay"`

	StaleAfter      timex.Duration `json:"stale_after"`
	SweepInterval   timex.Duration `json:"sweep_interval"`
	RetentionWindow timex.Duration `json:"retention_window"`

	DefaultQuotaBytes *int64         `json:"default_quota_bytes"`
	DownloadURLTTL    timex.Duration `json:"download_url_ttl"`
	StagingDir        string         `json:"staging_dir"`
}

// parseJson overlays values from the JSON file named by -c/-config (or
// ASSETKEEPER_CONFIG). Without a path nothing happens. An unreadable file
// or invalid JSON panics, as a broken config must stop startup.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.StagingDir, c.StagingDir)

	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RetryBaseDelay.Duration > 0 {
		config.RetryBaseDelay = c.RetryBaseDelay.Duration
	}
	if c.StaleAfter.Duration > 0 {
		config.StaleAfter = c.StaleAfter.Duration
	}
	if c.SweepInterval.Duration > 0 {
		config.SweepInterval = c.SweepInterval.Duration
	}
	if c.RetentionWindow.Duration > 0 {
		config.RetentionWindow = c.RetentionWindow.Duration
	}
	if c.DownloadURLTTL.Duration > 0 {
		config.DownloadURLTTL = c.DownloadURLTTL.Duration
	}

	if c.S3UsePathStyle != nil {
		config.S3UsePathStyle = *c.S3UsePathStyle
	}
	if c.S3PresignedParts != nil {
		config.S3PresignedParts = *c.S3PresignedParts
	}
	if c.MaxConcurrency > 0 {
		config.MaxConcurrency = c.MaxConcurrency
	}
	if c.ToleranceFactor > 0 {
		config.ToleranceFactor = c.ToleranceFactor
	}
	if c.SmallTierBytes > 0 {
		config.SmallTierBytes = c.SmallTierBytes
	}
	if c.LargeTierBytes > 0 {
		config.LargeTierBytes = c.LargeTierBytes
	}
	if c.PartRetries != nil {
		config.PartRetries = *c.PartRetries
	}
	if c.DefaultQuotaBytes != nil {
		config.DefaultQuotaBytes = *c.DefaultQuotaBytes
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
