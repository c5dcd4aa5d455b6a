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
	GCP          GCPConfig
	GCS          GCSConfig
	Documents    DocumentsConfig
	Cache        CacheConfig
	Drafts       DraftsConfig
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
	Env          string `envconfig:"GIFTDASH_APP_ENV" required:"true"`
	Port         string `envconfig:"GIFTDASH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GIFTDASH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GIFTDASH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GIFTDASH_DB_DSN"`
	Driver string `envconfig:"GIFTDASH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GIFTDASH_DB_HOST"`
	LegacyPort     int    `envconfig:"GIFTDASH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GIFTDASH_DB_USER"`
	LegacyPassword string `envconfig:"GIFTDASH_DB_PASSWORD"`
	LegacyName     string `envconfig:"GIFTDASH_DB_NAME"`
	LegacySSLMode  string `envconfig:"GIFTDASH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GIFTDASH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GIFTDASH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GIFTDASH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GIFTDASH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GIFTDASH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GIFTDASH_REDIS_ADDR"`
	Password     string        `envconfig:"GIFTDASH_REDIS_PASSWORD"`
	DB           int           `envconfig:"GIFTDASH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GIFTDASH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GIFTDASH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GIFTDASH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GIFTDASH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GIFTDASH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"GIFTDASH_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"GIFTDASH_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"GIFTDASH_JWT_EXPIRATION_MINUTES" required:"true"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"GIFTDASH_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"GIFTDASH_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"GIFTDASH_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName        string        `envconfig:"GIFTDASH_GCS_BUCKET_NAME" required:"true"`
	DownloadURLExpiry time.Duration `envconfig:"GIFTDASH_GCS_DOWNLOAD_URL_EXPIRY" default:"24h"`
}

type DocumentsConfig struct {
	MaxUploadMB int `envconfig:"GIFTDASH_DOCUMENTS_MAX_UPLOAD_MB" default:"20"`
}

// MaxUploadBytes converts the configured megabyte cap to bytes.
func (d DocumentsConfig) MaxUploadBytes() int64 {
	return int64(d.MaxUploadMB) * 1024 * 1024
}

type CacheConfig struct {
	CardsTTL time.Duration `envconfig:"GIFTDASH_CACHE_CARDS_TTL" default:"10m"`
}

type DraftsConfig struct {
	TTL time.Duration `envconfig:"GIFTDASH_DRAFT_TTL" default:"720h"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"GIFTDASH_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"GIFTDASH_AUTO_MIGRATE" default:"false"`
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
