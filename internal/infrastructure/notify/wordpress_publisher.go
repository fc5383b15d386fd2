package notify

import (
	"context"
	"log"
	"time"

	"bizdir_billing/internal/domain/entities"
	"bizdir_billing/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const registerPath = "/wp-json/business-registration/v1/register"

type WordPressConfig struct {
	URL         string        `envconfig:"URL"`
	APIKey      string        `envconfig:"API_KEY"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// LoadWordPressConfig reads WORDPRESS_* environment variables.
func LoadWordPressConfig() (WordPressConfig, error) {
	var cfg WordPressConfig
	if err := envconfig.Process("wordpress", &cfg); err != nil {
		return WordPressConfig{}, err
	}
	return cfg, nil
}

// WordPressPublisher pushes paid listings to the directory site.
type WordPressPublisher struct {
	http *resty.Client
}

var _ interfaces.IListingPublisher = (*WordPressPublisher)(nil)

func NewWordPressPublisher(cfg WordPressConfig) *WordPressPublisher {
	httpClient := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.HTTPTimeout).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.APIKey)
	return &WordPressPublisher{http: httpClient}
}

type listingPayload struct {
	Title string         `json:"title"`
	Meta  map[string]any `json:"meta"`
}

func (p *WordPressPublisher) PublishCompletedListing(ctx context.Context, o entities.Order) error {
	payload := listingPayload{
		Title: o.Title,
		Meta: map[string]any{
			"payment_status": "completed",
			"payment_id":     o.TransactionID,
			"order_id":       o.MerchOrderID,
			"amount":         o.Amount.String(),
		},
	}

	resp, err := p.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(registerPath)
	if err != nil {
		return errors.Wrap(err, "wordpress: publish listing")
	}
	if resp.IsError() {
		return errors.Errorf("wordpress: publish listing: status %d", resp.StatusCode())
	}
	log.Printf("[notify][wordpress] listing published order_id=%s", o.MerchOrderID)
	return nil
}
