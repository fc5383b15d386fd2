// Package telebirr implements the Telebirr payment-gateway protocol: canonical
// request signing, fabric-token exchange, pre-order creation (one-time and
// mandate), settlement verification and payment-URL derivation.
package telebirr

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	tokenPath    = "/payment/v1/token"
	preOrderPath = "/payment/v1/merchant/preOrder"
	queryPath    = "/payment/v1/merchant/query"

	// tradeStateSuccess is the gateway's literal settled trade state.
	tradeStateSuccess = "SUCCESS"
)

var (
	// ErrGatewayUnavailable covers network errors and timeouts talking to the
	// gateway. Callers may retry; a fresh nonce and timestamp are generated on
	// every attempt, a canonical string is never reused.
	ErrGatewayUnavailable = errors.New("telebirr gateway unavailable")
	// ErrGatewayRejected covers non-success gateway responses.
	ErrGatewayRejected = errors.New("telebirr gateway rejected request")
)

// Client talks to the Telebirr gateway. All state is set at construction and
// read-only afterwards; calls for different orders may run concurrently.
type Client struct {
	cfg    Config
	signer *Signer
	http   *resty.Client
}

func NewClient(cfg Config) (*Client, error) {
	signer, err := NewSigner(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.HTTPTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-APP-Key", cfg.FabricAppID)
	return &Client{cfg: cfg, signer: signer, http: httpClient}, nil
}

type tokenResponse struct {
	Token string `json:"token"`
}

// ApplyFabricToken exchanges the application secret for a short-lived bearer
// token. A fresh token is requested per gateway operation; nothing is cached,
// so a token can never outlive its validity window.
func (c *Client) ApplyFabricToken(ctx context.Context) (string, error) {
	var out tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"appSecret": c.cfg.AppSecret}).
		SetResult(&out).
		Post(tokenPath)
	if err != nil {
		return "", errors.Wrapf(ErrGatewayUnavailable, "apply fabric token: %v", err)
	}
	if resp.IsError() {
		return "", errors.Wrapf(ErrGatewayRejected, "apply fabric token: status %d", resp.StatusCode())
	}
	if out.Token == "" {
		return "", errors.Wrap(ErrGatewayRejected, "apply fabric token: empty token in response")
	}
	return out.Token, nil
}

// CreateOrder submits a one-time pre-order and returns the payment URL the
// payer's device opens. No local record is written here; persisting the order
// is the caller's responsibility once a URL is obtained.
func (c *Client) CreateOrder(ctx context.Context, title string, amount decimal.Decimal, merchOrderID string) (string, error) {
	return c.preOrder(ctx, c.orderBizContent(title, amount, merchOrderID))
}

// CreateMandateOrder submits a recurring-charge pre-order. On top of the
// one-time fields it carries the mandate block: the merchant contract number,
// the configured mandate template and an execute time of now plus seven days
// at day granularity.
func (c *Client) CreateMandateOrder(ctx context.Context, title string, amount decimal.Decimal, merchOrderID, contractNo string) (string, error) {
	biz := c.orderBizContent(title, amount, merchOrderID)
	biz["mandate_data"] = map[string]string{
		"mctContractNo":     contractNo,
		"mandateTemplateId": c.cfg.MandateTemplateID,
		"executeTime":       time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
	}
	return c.preOrder(ctx, biz)
}

func (c *Client) orderBizContent(title string, amount decimal.Decimal, merchOrderID string) map[string]any {
	return map[string]any{
		"notify_url":            c.cfg.NotifyURL,
		"trade_type":            tradeTypeInApp,
		"appid":                 c.cfg.MerchantAppID,
		"merch_code":            c.cfg.MerchantCode,
		"merch_order_id":        merchOrderID,
		"title":                 title,
		"total_amount":          amount.String(),
		"trans_currency":        c.cfg.Currency,
		"timeout_express":       timeoutExpress,
		"payee_identifier":      c.cfg.MerchantCode,
		"payee_identifier_type": "04",
		"payee_type":            "5000",
		"redirect_url":          c.cfg.RedirectURL,
	}
}

type preOrderResponse struct {
	Code       string `json:"code"`
	Msg        string `json:"msg"`
	BizContent struct {
		PrepayID string `json:"prepay_id"`
	} `json:"biz_content"`
}

func (c *Client) preOrder(ctx context.Context, biz map[string]any) (string, error) {
	token, err := c.ApplyFabricToken(ctx)
	if err != nil {
		return "", err
	}

	env := newEnvelope(methodPreOrder, biz)
	if err := env.sign(c.signer); err != nil {
		return "", err
	}

	var out preOrderResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", token).
		SetBody(env).
		SetResult(&out).
		Post(preOrderPath)
	if err != nil {
		return "", errors.Wrapf(ErrGatewayUnavailable, "preorder: %v", err)
	}
	if resp.IsError() {
		return "", errors.Wrapf(ErrGatewayRejected, "preorder: status %d", resp.StatusCode())
	}
	if out.BizContent.PrepayID == "" {
		return "", errors.Wrapf(ErrGatewayRejected, "preorder: missing prepay_id (code=%s msg=%s)", out.Code, out.Msg)
	}

	return c.paymentURL(out.BizContent.PrepayID)
}

// paymentURL derives the redirect URL from the prepay id. The query map is a
// second, smaller field set signed independently of the pre-order envelope.
func (c *Client) paymentURL(prepayID string) (string, error) {
	fields := map[string]string{
		"appid":      c.cfg.MerchantAppID,
		"merch_code": c.cfg.MerchantCode,
		"nonce_str":  nonceStr(),
		"prepay_id":  prepayID,
		"timestamp":  timestamp(),
	}
	sign, err := c.signer.Sign(fields)
	if err != nil {
		return "", err
	}

	// Fixed parameter order and plain "&" joins: the gateway's H5 page parses
	// this exact shape, including the unescaped base64 signature.
	parts := []string{
		"appid=" + fields["appid"],
		"merch_code=" + fields["merch_code"],
		"nonce_str=" + fields["nonce_str"],
		"prepay_id=" + fields["prepay_id"],
		"timestamp=" + fields["timestamp"],
		"sign=" + sign,
		"sign_type=" + signType,
	}
	return c.cfg.BaseURL + preOrderPath + "?" + strings.Join(parts, "&"), nil
}

type queryResponse struct {
	BizContent map[string]any `json:"biz_content"`
}

// VerifyPayment queries the gateway for the authoritative state of an order.
// A non-success trade state is not an error: it reports verified=false with
// the gateway-supplied details for display.
func (c *Client) VerifyPayment(ctx context.Context, merchOrderID string) (bool, string, map[string]any, error) {
	token, err := c.ApplyFabricToken(ctx)
	if err != nil {
		return false, "", nil, err
	}

	env := newEnvelope(methodQuery, map[string]any{
		"appid":          c.cfg.MerchantAppID,
		"merch_code":     c.cfg.MerchantCode,
		"merch_order_id": merchOrderID,
	})
	if err := env.sign(c.signer); err != nil {
		return false, "", nil, err
	}

	var out queryResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", token).
		SetBody(env).
		SetResult(&out).
		Post(queryPath)
	if err != nil {
		return false, "", nil, errors.Wrapf(ErrGatewayUnavailable, "query: %v", err)
	}
	if resp.IsError() {
		return false, "", nil, errors.Wrapf(ErrGatewayRejected, "query: status %d", resp.StatusCode())
	}

	state, _ := out.BizContent["trade_state"].(string)
	if state != tradeStateSuccess {
		log.Printf("[telebirr][client] query merch_order_id=%s trade_state=%s", merchOrderID, state)
	}
	return state == tradeStateSuccess, state, out.BizContent, nil
}
