package config

// EnvPrefix is the envconfig prefix applied to every variable.
const EnvPrefix = "GIFTDASH"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (validation
// messages and tests).
const (
	EnvAppEnv     = "GIFTDASH_APP_ENV"
	EnvPort       = "GIFTDASH_APP_PORT"
	EnvDBDSN      = "GIFTDASH_DB_DSN"
	EnvDBHost     = "GIFTDASH_DB_HOST"
	EnvDBUser     = "GIFTDASH_DB_USER"
	EnvDBName     = "GIFTDASH_DB_NAME"
	EnvRedisURL   = "GIFTDASH_REDIS_URL"
	EnvJWTSecret  = "GIFTDASH_JWT_SECRET"
	EnvJWTIssuer  = "GIFTDASH_JWT_ISSUER"
	EnvJWTExpMins = "GIFTDASH_JWT_EXPIRATION_MINUTES"

	EnvGCPProjectID = "GIFTDASH_GCP_PROJECT_ID"
	EnvGCSBucket    = "GIFTDASH_GCS_BUCKET_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
