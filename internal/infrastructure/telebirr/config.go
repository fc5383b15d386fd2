package telebirr

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the immutable gateway configuration. It is loaded once at startup
// and passed to the client at construction; nothing in this package reads the
// environment after that.
type Config struct {
	BaseURL           string        `envconfig:"BASE_URL" default:"https://developerportal.ethiotelebirr.et:38443/apiaccess/payment/gateway"`
	FabricAppID       string        `envconfig:"FABRIC_APP_ID" required:"true"`
	AppSecret         string        `envconfig:"APP_SECRET" required:"true"`
	MerchantAppID     string        `envconfig:"MERCHANT_APP_ID" required:"true"`
	MerchantCode      string        `envconfig:"MERCHANT_CODE" required:"true"`
	PrivateKey        string        `envconfig:"PRIVATE_KEY" required:"true"`
	NotifyURL         string        `envconfig:"NOTIFY_URL" required:"true"`
	RedirectURL       string        `envconfig:"REDIRECT_URL"`
	Currency          string        `envconfig:"CURRENCY" default:"ETB"`
	MandateTemplateID string        `envconfig:"MANDATE_TEMPLATE_ID" default:"103001"`
	HTTPTimeout       time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
}

// LoadConfig reads TELEBIRR_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("telebirr", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = cfg.NotifyURL
	}
	return cfg, nil
}
