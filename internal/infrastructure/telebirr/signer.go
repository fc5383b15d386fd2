package telebirr

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Fields that never participate in the signature. biz_content is excluded as a
// key because its members are flattened into the signed set individually.
var excludedFields = map[string]struct{}{
	"sign":        {},
	"sign_type":   {},
	"header":      {},
	"refund_info": {},
	"openType":    {},
	"raw_request": {},
	"biz_content": {},
}

// Signer produces the RSA-SHA256 signature over the canonical representation
// of a request's field map. The private key is parsed once at construction and
// never mutated, so a single Signer is safe for concurrent use.
type Signer struct {
	key *rsa.PrivateKey
}

func NewSigner(pemKey string) (*Signer, error) {
	key, err := parsePrivateKey(pemKey)
	if err != nil {
		return nil, err
	}
	return &Signer{key: key}, nil
}

// Sign filters the excluded keys out of fields, canonicalizes the remainder
// and returns the base64-encoded RSA PKCS#1 v1.5 signature of the SHA-256
// digest. The result depends only on the key/value pairs, never on map
// insertion order.
func (s *Signer) Sign(fields map[string]string) (string, error) {
	digest := sha256.Sum256([]byte(canonicalString(fields)))
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA256, digest[:])
	if err != nil {
		return "", errors.Wrap(err, "telebirr: sign canonical string")
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// canonicalString joins the non-excluded fields as key=value pairs with "&",
// keys sorted by byte order. Values are used exactly as given; stringification
// happens upstream when the envelope is flattened.
func canonicalString(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if _, skip := excludedFields[k]; skip {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}
	return strings.Join(pairs, "&")
}

func parsePrivateKey(pemKey string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(normalizePEM(pemKey)))
	if block == nil {
		return nil, errors.New("telebirr: private key contains no PEM block")
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("telebirr: private key is not RSA")
		}
		return rsaKey, nil
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "telebirr: parse private key")
	}
	return key, nil
}

// normalizePEM strips per-line indentation. Deployment configs tend to carry
// the key as an indented multiline value, which pem.Decode rejects as-is.
func normalizePEM(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, "\n")
}
