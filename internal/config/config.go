package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const envPrefix = "LOADER_"

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Database  DatabaseConfig  `koanf:"database"`
	Marketing MarketingConfig `koanf:"marketing"`
	OAuth     OAuthConfig     `koanf:"oauth" validate:"-"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Offer     OfferConfig     `koanf:"offer"`
	Logger    LoggerConfig    `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=prod dev"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// MarketingConfig points at the campaign subscribe endpoint.
type MarketingConfig struct {
	APIURL      string        `koanf:"api_url" validate:"required,url"`
	Timeout     time.Duration `koanf:"timeout" validate:"required"`
	AuthScheme  string        `koanf:"auth_scheme" validate:"required"`
	ListKey     string        `koanf:"list_key"`
	SuccessCode string        `koanf:"success_status" validate:"required"`
}

// OAuthConfig holds the long-lived refresh credential used to mint access tokens.
// LoadConfig does not check it; commands that dispatch call Validate.
type OAuthConfig struct {
	TokenURL     string        `koanf:"token_url" validate:"required,url"`
	RefreshToken string        `koanf:"refresh_token" validate:"required"`
	ClientID     string        `koanf:"client_id" validate:"required"`
	ClientSecret string        `koanf:"client_secret" validate:"required"`
	Validity     time.Duration `koanf:"validity" validate:"required"`
	MaxRetries   int           `koanf:"max_retries" validate:"min=0"`
	BaseDelay    time.Duration `koanf:"base_delay"`
	Timeout      time.Duration `koanf:"timeout" validate:"required"`
}

func (c OAuthConfig) Validate() error {
	return validator.New().Struct(c)
}

type RateLimitConfig struct {
	Capacity int           `koanf:"capacity" validate:"required,min=1"`
	Window   time.Duration `koanf:"window" validate:"required"`
	Lockout  time.Duration `koanf:"lockout" validate:"required"`
}

// OfferConfig drives offer code URLs and the selection of rows to process. BrandURL
// falls back to BrandURLs[primary.env] when unset.
type OfferConfig struct {
	BrandURL      string            `koanf:"brand_url" validate:"required"`
	BrandURLs     map[string]string `koanf:"brand_urls"`
	DefaultURL    string            `koanf:"default_url" validate:"required"`
	BrandDealerID string            `koanf:"brand_dealer_id"`
	InboundBatch  string            `koanf:"inbound_batch"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

// defaults mirror the limits published for the marketing API and the token lifetime
// observed from the accounts server.
var defaults = map[string]any{
	"primary.env":                 "prod",
	"database.port":               5432,
	"database.ssl_mode":           "disable",
	"database.max_open_conns":     5,
	"database.max_idle_conns":     1,
	"database.conn_max_lifetime":  "1h",
	"database.conn_max_idle_time": "30m",
	"marketing.api_url":           "https://campaigns.zoho.com/api/v1.1/json/listsubscribe",
	"marketing.timeout":           "30s",
	"marketing.auth_scheme":       "Zoho-oauthtoken",
	"marketing.success_status":    "success",
	"oauth.token_url":             "https://accounts.zoho.com/oauth/v2/token",
	"oauth.validity":              "3400s",
	"oauth.max_retries":           3,
	"oauth.base_delay":            "0s",
	"oauth.timeout":               "30s",
	"rate_limit.capacity":         500,
	"rate_limit.window":           "300s",
	"rate_limit.lockout":          "1800s",
	"offer.brand_urls.prod":       "http://default-brandsmart-url.com",
	"offer.brand_urls.dev":        "http://default-brandsmart-url.com",
	"offer.default_url":           "http://default-general-url.com",
	"offer.brand_dealer_id":       "5779155000141100449",
	"logger.level":                "info",
	"logger.format":               "text",
}

// LoadConfig layers defaults, the optional YAML file at path and LOADER_* environment
// variables, in that order.
func LoadConfig(path string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if mainConfig.Offer.BrandURL == "" {
		mainConfig.Offer.BrandURL = mainConfig.Offer.BrandURLs[mainConfig.Primary.Env]
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
