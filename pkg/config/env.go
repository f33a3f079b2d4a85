package config

// Environment variable names used in error messages and tests. The
// envconfig tags on the config structs remain the source of truth.
const (
	EnvPrefix = "IDLEQUEST"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvAppEnv   = "IDLEQUEST_APP_ENV"
	EnvPort     = "IDLEQUEST_APP_PORT"
	EnvLogLevel = "IDLEQUEST_LOG_LEVEL"

	EnvDBDSN    = "IDLEQUEST_DB_DSN"
	EnvDBDriver = "IDLEQUEST_DB_DRIVER"
	EnvDBHost   = "IDLEQUEST_DB_HOST"
	EnvDBUser   = "IDLEQUEST_DB_USER"
	EnvDBName   = "IDLEQUEST_DB_NAME"

	EnvRedisURL = "IDLEQUEST_REDIS_URL"

	EnvRandomSeed = "IDLEQUEST_GAME_RANDOM_SEED"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
