package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the explicit startup configuration. There is no module-level
// state; main builds one of these and passes it down.
type Config struct {
	Env        string `envconfig:"APP_ENV" default:"development"`
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	// Upstream product catalog API base URL (no trailing slash).
	APIBaseURL string `envconfig:"API_BASE_URL" default:"https://fakestoreapi.com/products"`

	// Signing key for the cart and flash cookies.
	CookieSecret string `envconfig:"COOKIE_SECRET" required:"true"`

	CartCookieName  string `envconfig:"CART_COOKIE_NAME" default:"tokokita_cart"`
	FlashCookieName string `envconfig:"FLASH_COOKIE_NAME" default:"tokokita_flash"`

	// Secure cookies must be on everywhere except local development.
	SecureCookies bool `envconfig:"SECURE_COOKIES" default:"false"`

	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if len(cfg.CookieSecret) < 16 {
		return nil, fmt.Errorf("COOKIE_SECRET must be at least 16 bytes")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }
