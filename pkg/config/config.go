package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Company      CompanyConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"QB_APP_ENV" required:"true"`
	Port         string `envconfig:"QB_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"QB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"QB_DB_DSN"`
	Driver string `envconfig:"QB_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"QB_DB_HOST"`
	Port     int    `envconfig:"QB_DB_PORT" default:"5432"`
	User     string `envconfig:"QB_DB_USER"`
	Password string `envconfig:"QB_DB_PASSWORD"`
	Name     string `envconfig:"QB_DB_NAME"`
	SSLMode  string `envconfig:"QB_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"QB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"QB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"QB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"QB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"QB_REDIS_URL"`
	Address      string        `envconfig:"QB_REDIS_ADDR"`
	Password     string        `envconfig:"QB_REDIS_PASSWORD"`
	DB           int           `envconfig:"QB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"QB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"QB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"QB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"QB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"QB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether any redis endpoint was provided. Rate limiting
// is skipped entirely when it returns false.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"QB_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"QB_JWT_ISSUER" default:"quotation-backend"`
	ExpirationMinutes int    `envconfig:"QB_JWT_EXPIRATION_MINUTES" default:"720"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"QB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"QB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"QB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"QB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"QB_ARGON_KEY_LEN" default:"32"`
}

// CompanyConfig is the issuer identity snapshotted into every quotation at
// creation time. It is configuration, not a database entity, so historical
// quotations keep whatever identity was active when they were issued.
type CompanyConfig struct {
	Name        string `envconfig:"QB_COMPANY_NAME" default:"SRI RAJA MOSQUITO NETLON SERVICES"`
	Description string `envconfig:"QB_COMPANY_DESCRIPTION" default:"Manufacture & Dealer in Mosquito & Insect Net (WholeSale & Retail)"`
	Phone       string `envconfig:"QB_COMPANY_PHONE" default:"+91 9790569529"`
	GSTIN       string `envconfig:"QB_COMPANY_GSTIN" default:"33BECPR927M1ZU"`
	Address     string `envconfig:"QB_COMPANY_ADDRESS" default:"Ryan Complex Vadavalli Road, Edayarpalayam, Coimbatore-25"`
	Branch      string `envconfig:"QB_COMPANY_BRANCH" default:"Edayarpalayam"`
}

type RateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"QB_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"QB_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"QB_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"QB_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"QB_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"QB_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"QB_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"QB_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range discreteDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
