package config

const (
	// EnvPrefix is intentionally empty: every field declares its full QB_*
	// variable name in its envconfig tag.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "QB_DB_DSN"
	EnvDBHost = "QB_DB_HOST"
	EnvDBUser = "QB_DB_USER"
	EnvDBName = "QB_DB_NAME"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
