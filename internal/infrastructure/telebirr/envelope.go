package telebirr

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	methodPreOrder = "payment.preorder"
	methodQuery    = "payment.query"

	protocolVersion = "1.0"
	signType        = "SHA256WithRSA"

	tradeTypeInApp = "InApp"
	timeoutExpress = "120m"
)

// envelope is the signed JSON body posted to the gateway. The struct that gets
// serialized onto the wire is the same one the signature is computed from, so
// the signed field set can never drift from the transmitted one.
type envelope struct {
	Timestamp  string         `json:"timestamp"`
	NonceStr   string         `json:"nonce_str"`
	Method     string         `json:"method"`
	Version    string         `json:"version"`
	BizContent map[string]any `json:"biz_content"`
	Sign       string         `json:"sign,omitempty"`
	SignType   string         `json:"sign_type,omitempty"`
}

func newEnvelope(method string, biz map[string]any) *envelope {
	return &envelope{
		Timestamp:  timestamp(),
		NonceStr:   nonceStr(),
		Method:     method,
		Version:    protocolVersion,
		BizContent: biz,
	}
}

// sign flattens the envelope, signs it and stamps sign/sign_type onto it.
func (e *envelope) sign(s *Signer) error {
	fields, err := e.signedFields()
	if err != nil {
		return err
	}
	sig, err := s.Sign(fields)
	if err != nil {
		return err
	}
	e.Sign = sig
	e.SignType = signType
	return nil
}

// signedFields combines the outer envelope fields with one level of
// biz_content into the map the signer consumes.
func (e *envelope) signedFields() (map[string]string, error) {
	fields := map[string]string{
		"timestamp": e.Timestamp,
		"nonce_str": e.NonceStr,
		"method":    e.Method,
		"version":   e.Version,
	}
	for k, v := range e.BizContent {
		s, err := valueString(v)
		if err != nil {
			return nil, err
		}
		fields[k] = s
	}
	return fields, nil
}

// valueString converts a biz_content value to its canonical string. Nested
// values (the mandate block) are JSON-encoded; encoding/json emits map keys
// in sorted order, so the encoding is deterministic.
func valueString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "telebirr: encode biz_content value")
	}
	return string(b), nil
}

const nonceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// nonceStr returns the 32-character uppercase-alphanumeric nonce the gateway
// requires on every request.
func nonceStr() string {
	b := make([]byte, 32)
	for i := range b {
		b[i] = nonceAlphabet[rand.Intn(len(nonceAlphabet))]
	}
	return string(b)
}

// timestamp returns the current unix time in seconds, as a string.
func timestamp() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}
