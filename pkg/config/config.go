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
	Env          string `envconfig:"CLOSETWISH_APP_ENV" required:"true"`
	Port         string `envconfig:"CLOSETWISH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CLOSETWISH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CLOSETWISH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CLOSETWISH_DB_DSN"`
	Driver string `envconfig:"CLOSETWISH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CLOSETWISH_DB_HOST"`
	LegacyPort     int    `envconfig:"CLOSETWISH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CLOSETWISH_DB_USER"`
	LegacyPassword string `envconfig:"CLOSETWISH_DB_PASSWORD"`
	LegacyName     string `envconfig:"CLOSETWISH_DB_NAME"`
	LegacySSLMode  string `envconfig:"CLOSETWISH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CLOSETWISH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CLOSETWISH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CLOSETWISH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CLOSETWISH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig backs the optional session marker store. When URL and Address are
// both empty the API runs without one.
type RedisConfig struct {
	URL          string        `envconfig:"CLOSETWISH_REDIS_URL"`
	Address      string        `envconfig:"CLOSETWISH_REDIS_ADDR"`
	Password     string        `envconfig:"CLOSETWISH_REDIS_PASSWORD"`
	DB           int           `envconfig:"CLOSETWISH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CLOSETWISH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CLOSETWISH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CLOSETWISH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CLOSETWISH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CLOSETWISH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether a Redis endpoint was provided at all.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret       string `envconfig:"CLOSETWISH_JWT_SECRET" required:"true"`
	ExpirationMS int64  `envconfig:"CLOSETWISH_JWT_EXPIRATION_MS" required:"true"`
}

// Expiration returns the access token lifetime configured in milliseconds.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMS <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMS) * time.Millisecond
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CLOSETWISH_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CLOSETWISH_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CLOSETWISH_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CLOSETWISH_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CLOSETWISH_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CLOSETWISH_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
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
