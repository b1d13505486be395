package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   shop credentials, etc.), security settings
// - default: Values common across all environments (timeouts, concurrency
//   limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Shopify   ShopifyConfig
	CreditAPI CreditAPIConfig
	Bulk      BulkConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// ShopifyConfig identifies the tenant shop this instance serves. The embedded
// dashboard authenticates with App Bridge session tokens signed with the app's
// shared secret; orders are read through the Admin API with the access token.
type ShopifyConfig struct {
	ShopDomain   string `envconfig:"SHOP_DOMAIN" required:"true"`
	AccessToken  string `envconfig:"SHOPIFY_ACCESS_TOKEN" required:"true"`
	APIVersion   string `envconfig:"SHOPIFY_API_VERSION" default:"2025-07"`
	SharedSecret string `envconfig:"SHOPIFY_SHARED_SECRET" required:"true"`
	Timezone     string `envconfig:"SHOP_TIMEZONE" default:"UTC"`
}

type CreditAPIConfig struct {
	BaseURL string        `envconfig:"CREDIT_API_BASE_URL" required:"true"`
	Token   string        `envconfig:"CREDIT_API_TOKEN" required:"true"`
	Timeout time.Duration `envconfig:"CREDIT_API_TIMEOUT" default:"15s"`
}

type BulkConfig struct {
	IssueConcurrency int           `envconfig:"BULK_ISSUE_CONCURRENCY" default:"8"`
	RunDeadline      time.Duration `envconfig:"BULK_RUN_DEADLINE" default:"30m"`
	RetryMaxElapsed  time.Duration `envconfig:"BULK_RETRY_MAX_ELAPSED" default:"2m"`
	PreviewTopN      int           `envconfig:"BULK_PREVIEW_TOP_N" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// Location resolves the merchant's IANA timezone. The schedule matcher
// evaluates daily windows and weekdays in this zone.
func (c *ShopifyConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SHOP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		Shopify: ShopifyConfig{
			ShopDomain:   "test-shop.myshopify.com",
			AccessToken:  "shpat_test",
			APIVersion:   "2025-07",
			SharedSecret: "test-secret",
			Timezone:     "UTC",
		},
		CreditAPI: CreditAPIConfig{
			BaseURL: "http://localhost:18080",
			Token:   "test-token",
			Timeout: time.Second,
		},
		Bulk: BulkConfig{
			IssueConcurrency: 4,
			RunDeadline:      time.Minute,
			RetryMaxElapsed:  time.Second,
			PreviewTopN:      10,
		},
	}
}
