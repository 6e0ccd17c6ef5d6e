package config

// EnvPrefix scopes every environment variable the service reads.
const EnvPrefix = "CLOSETWISH"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv    = "CLOSETWISH_APP_ENV"
	EnvPort      = "CLOSETWISH_APP_PORT"
	EnvDBDSN     = "CLOSETWISH_DB_DSN"
	EnvDBHost    = "CLOSETWISH_DB_HOST"
	EnvDBUser    = "CLOSETWISH_DB_USER"
	EnvDBName    = "CLOSETWISH_DB_NAME"
	EnvRedisURL  = "CLOSETWISH_REDIS_URL"
	EnvJWTSecret = "CLOSETWISH_JWT_SECRET"
	EnvJWTExpMS  = "CLOSETWISH_JWT_EXPIRATION_MS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
