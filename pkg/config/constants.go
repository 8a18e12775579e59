package config

// EnvPrefix scopes every environment variable this service reads.
const EnvPrefix = "LOWKEY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvDBDSN  = "LOWKEY_DB_DSN"
	EnvDBHost = "LOWKEY_DB_HOST"
	EnvDBUser = "LOWKEY_DB_USER"
	EnvDBName = "LOWKEY_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
