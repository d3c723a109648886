package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "DRIVE_APP_ENV"
	EnvPort     = "DRIVE_APP_PORT"
	EnvDBDSN    = "DRIVE_DB_DSN"
	EnvDBDriver = "DRIVE_DB_DRIVER"
	EnvDBHost   = "DRIVE_DB_HOST"
	EnvDBUser   = "DRIVE_DB_USER"
	EnvDBName   = "DRIVE_DB_NAME"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Session      SessionConfig
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
	Env          string `envconfig:"DRIVE_APP_ENV" required:"true"`
	Port         string `envconfig:"DRIVE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DRIVE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DRIVE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DRIVE_DB_DSN"`
	Driver string `envconfig:"DRIVE_DB_DRIVER" default:"sqlite"`

	LegacyHost     string `envconfig:"DRIVE_DB_HOST"`
	LegacyPort     int    `envconfig:"DRIVE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DRIVE_DB_USER"`
	LegacyPassword string `envconfig:"DRIVE_DB_PASSWORD"`
	LegacyName     string `envconfig:"DRIVE_DB_NAME"`
	LegacySSLMode  string `envconfig:"DRIVE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DRIVE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DRIVE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DRIVE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DRIVE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type SessionConfig struct {
	CartCookie string        `envconfig:"DRIVE_SESSION_CART_COOKIE" default:"drive_session"`
	AuthCookie string        `envconfig:"DRIVE_SESSION_AUTH_COOKIE" default:"auth_token"`
	TTL        time.Duration `envconfig:"DRIVE_SESSION_TTL" default:"720h"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"DRIVE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"DRIVE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"DRIVE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"DRIVE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"DRIVE_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"DRIVE_AUTO_MIGRATE" default:"false"`
	SeedCatalog bool `envconfig:"DRIVE_SEED_CATALOG" default:"true"`
}

// sqliteDefaultDSN matches the on-disk location the site historically used.
const sqliteDefaultDSN = "data/site.db"

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.IsSQLite() {
		db.DSN = sqliteDefaultDSN
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
