package config

import (
	"github.com/dmitrijs2005/assetkeeper/internal/flagx"
)

const envPrefix = "ASSETKEEPER_"

// parseEnv overlays ASSETKEEPER_* environment variables. A malformed value
// panics like a malformed JSON file does.
func parseEnv(config *Config) {
	flagx.EnvString(envPrefix+"GRPC_ADDR", &config.EndpointAddrGRPC)
	flagx.EnvString(envPrefix+"DATABASE_DSN", &config.DatabaseDSN)
	flagx.EnvString(envPrefix+"SECRET_KEY", &config.SecretKey)
	flagx.EnvString(envPrefix+"LOG_LEVEL", &config.LogLevel)
	flagx.EnvString(envPrefix+"S3_ROOT_USER", &config.S3RootUser)
	flagx.EnvString(envPrefix+"S3_ROOT_PASSWORD", &config.S3RootPassword)
	flagx.EnvString(envPrefix+"S3_BUCKET", &config.S3Bucket)
	flagx.EnvString(envPrefix+"S3_REGION", &config.S3Region)
	flagx.EnvString(envPrefix+"S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	flagx.EnvString(envPrefix+"STAGING_DIR", &config.StagingDir)

	errs := []error{
		flagx.EnvDuration(envPrefix+"ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration),
		flagx.EnvBool(envPrefix+"S3_USE_PATH_STYLE", &config.S3UsePathStyle),
		flagx.EnvBool(envPrefix+"S3_PRESIGNED_PARTS", &config.S3PresignedParts),
		flagx.EnvInt(envPrefix+"MAX_CONCURRENCY", &config.MaxConcurrency),
		flagx.EnvFloat(envPrefix+"TOLERANCE_FACTOR", &config.ToleranceFactor),
		flagx.EnvInt64(envPrefix+"SMALL_TIER_BYTES", &config.SmallTierBytes),
		flagx.EnvInt64(envPrefix+"LARGE_TIER_BYTES", &config.LargeTierBytes),
		flagx.EnvInt(envPrefix+"PART_RETRIES", &config.PartRetries),
		flagx.EnvDuration(envPrefix+"RETRY_BASE_DELAY", &config.RetryBaseDelay),
		flagx.EnvDuration(envPrefix+"STALE_AFTER", &config.StaleAfter),
		flagx.EnvDuration(envPrefix+"SWEEP_INTERVAL", &config.SweepInterval),
		flagx.EnvDuration(envPrefix+"RETENTION_WINDOW", &config.RetentionWindow),
		flagx.EnvInt64(envPrefix+"DEFAULT_QUOTA_BYTES", &config.DefaultQuotaBytes),
		flagx.EnvDuration(envPrefix+"DOWNLOAD_URL_TTL", &config.DownloadURLTTL),
	}
	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}
}
