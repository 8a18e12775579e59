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
	RateLimit    RateLimitConfig
	Printify     PrintifyConfig
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
	Env          string `envconfig:"LOWKEY_APP_ENV" required:"true"`
	Port         string `envconfig:"LOWKEY_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"LOWKEY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOWKEY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LOWKEY_DB_DSN"`
	Driver string `envconfig:"LOWKEY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LOWKEY_DB_HOST"`
	LegacyPort     int    `envconfig:"LOWKEY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LOWKEY_DB_USER"`
	LegacyPassword string `envconfig:"LOWKEY_DB_PASSWORD"`
	LegacyName     string `envconfig:"LOWKEY_DB_NAME"`
	LegacySSLMode  string `envconfig:"LOWKEY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LOWKEY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LOWKEY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LOWKEY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LOWKEY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver targets SQLite.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"LOWKEY_REDIS_URL"`
	Address      string        `envconfig:"LOWKEY_REDIS_ADDR"`
	Password     string        `envconfig:"LOWKEY_REDIS_PASSWORD"`
	DB           int           `envconfig:"LOWKEY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LOWKEY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LOWKEY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LOWKEY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LOWKEY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LOWKEY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint has been configured at all. Rate
// limiting degrades to a pass-through when it is absent.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"LOWKEY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"LOWKEY_JWT_ISSUER" default:"lowkey-legends"`
	ExpirationMinutes int    `envconfig:"LOWKEY_JWT_EXPIRATION_MINUTES" default:"10080"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LOWKEY_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LOWKEY_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LOWKEY_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LOWKEY_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LOWKEY_ARGON_KEY_LEN" default:"32"`
}

type RateLimitConfig struct {
	Window time.Duration `envconfig:"LOWKEY_RATE_LIMIT_WINDOW" default:"15m"`
	Limit  int           `envconfig:"LOWKEY_RATE_LIMIT_MAX" default:"100"`
}

type PrintifyConfig struct {
	APIToken string        `envconfig:"LOWKEY_PRINTIFY_API_TOKEN"`
	ShopID   string        `envconfig:"LOWKEY_PRINTIFY_SHOP_ID"`
	BaseURL  string        `envconfig:"LOWKEY_PRINTIFY_BASE_URL" default:"https://api.printify.com/v1"`
	Timeout  time.Duration `envconfig:"LOWKEY_PRINTIFY_TIMEOUT" default:"30s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"LOWKEY_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" || db.IsSQLite() {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
