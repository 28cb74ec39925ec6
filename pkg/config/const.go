package config

const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvDBDSN  = "PRINTWORKS_DB_DSN"
	EnvDBHost = "PRINTWORKS_DB_HOST"
	EnvDBUser = "PRINTWORKS_DB_USER"
	EnvDBName = "PRINTWORKS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
