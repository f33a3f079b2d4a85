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
	RateLimit    RateLimitConfig
	Game         GameConfig
	Messages     MessagesConfig
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
	Env          string `envconfig:"IDLEQUEST_APP_ENV" required:"true"`
	Port         string `envconfig:"IDLEQUEST_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"IDLEQUEST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"IDLEQUEST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"IDLEQUEST_DB_DSN"`
	Driver string `envconfig:"IDLEQUEST_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"IDLEQUEST_DB_HOST"`
	LegacyPort     int    `envconfig:"IDLEQUEST_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"IDLEQUEST_DB_USER"`
	LegacyPassword string `envconfig:"IDLEQUEST_DB_PASSWORD"`
	LegacyName     string `envconfig:"IDLEQUEST_DB_NAME"`
	LegacySSLMode  string `envconfig:"IDLEQUEST_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"IDLEQUEST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"IDLEQUEST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"IDLEQUEST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"IDLEQUEST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"IDLEQUEST_REDIS_URL" required:"true"`
	Address      string        `envconfig:"IDLEQUEST_REDIS_ADDR"`
	Password     string        `envconfig:"IDLEQUEST_REDIS_PASSWORD"`
	DB           int           `envconfig:"IDLEQUEST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"IDLEQUEST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"IDLEQUEST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"IDLEQUEST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"IDLEQUEST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"IDLEQUEST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type RateLimitConfig struct {
	Window          time.Duration `envconfig:"IDLEQUEST_RATE_LIMIT_WINDOW" default:"1m"`
	MessagesPerUser int           `envconfig:"IDLEQUEST_RATE_LIMIT_MESSAGES_PER_USER" default:"0"`
}

// Enabled reports whether the per-player message limit should be enforced.
// A zero limit turns the check off entirely.
func (r RateLimitConfig) Enabled() bool {
	return r.MessagesPerUser > 0 && r.Window > 0
}

type GameConfig struct {
	// RandomSeed pins the game RNG for reproducible runs. Zero means
	// seed from crypto/rand at startup.
	RandomSeed int64 `envconfig:"IDLEQUEST_GAME_RANDOM_SEED" default:"0"`
}

type MessagesConfig struct {
	// Path points at a TOML catalog that overrides the embedded one.
	Path string `envconfig:"IDLEQUEST_MESSAGES_PATH"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"IDLEQUEST_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.IsSQLite() {
		return fmt.Errorf("%s is required when %s is %q", EnvDBDSN, EnvDBDriver, DriverSQLite)
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
