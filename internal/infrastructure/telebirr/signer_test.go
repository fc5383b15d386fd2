package telebirr

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyPEM(t *testing.T) (string, *rsa.PublicKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pemKey := string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
	return pemKey, &key.PublicKey
}

func verifySignature(t *testing.T, pub *rsa.PublicKey, canonical, signature string) {
	t.Helper()
	sig, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)
	digest := sha256.Sum256([]byte(canonical))
	require.NoError(t, rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig))
}

func TestSigner_Deterministic(t *testing.T) {
	pemKey, pub := testKeyPEM(t)
	signer, err := NewSigner(pemKey)
	require.NoError(t, err)

	fields := map[string]string{
		"timestamp": "1700000000",
		"nonce_str": "ABC123",
		"appid":     "1270036784844802",
		"title":     "Listing Fee",
	}

	first, err := signer.Sign(fields)
	require.NoError(t, err)
	second, err := signer.Sign(fields)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	verifySignature(t, pub, "appid=1270036784844802&nonce_str=ABC123&timestamp=1700000000&title=Listing Fee", first)
}

func TestSigner_InsertionOrderInvariant(t *testing.T) {
	pemKey, _ := testKeyPEM(t)
	signer, err := NewSigner(pemKey)
	require.NoError(t, err)

	forward := map[string]string{}
	forward["a"] = "1"
	forward["b"] = "2"
	forward["c"] = "3"

	backward := map[string]string{}
	backward["c"] = "3"
	backward["b"] = "2"
	backward["a"] = "1"

	sigForward, err := signer.Sign(forward)
	require.NoError(t, err)
	sigBackward, err := signer.Sign(backward)
	require.NoError(t, err)
	assert.Equal(t, sigForward, sigBackward)
}

func TestCanonicalString_SortsAndJoins(t *testing.T) {
	got := canonicalString(map[string]string{
		"merch_code": "23942",
		"appid":      "111",
		"timestamp":  "1700000000",
	})
	assert.Equal(t, "appid=111&merch_code=23942&timestamp=1700000000", got)
}

func TestCanonicalString_ExcludesControlFields(t *testing.T) {
	got := canonicalString(map[string]string{
		"appid":       "111",
		"sign":        "SHOULD-NOT-APPEAR",
		"sign_type":   "SHA256WithRSA",
		"header":      "x",
		"refund_info": "x",
		"openType":    "x",
		"raw_request": "x",
		"biz_content": "x",
	})
	assert.Equal(t, "appid=111", got)
	assert.NotContains(t, got, "SHOULD-NOT-APPEAR")
}

func TestNewSigner_IndentedPEM(t *testing.T) {
	pemKey, _ := testKeyPEM(t)

	var indented strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(pemKey), "\n") {
		indented.WriteString("      " + line + "\n")
	}

	signer, err := NewSigner(indented.String())
	require.NoError(t, err)
	require.NotNil(t, signer)
}

func TestNewSigner_InvalidKey(t *testing.T) {
	_, err := NewSigner("not a key")
	require.Error(t, err)
}

func TestNonceStr_Format(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 16; i++ {
		nonce := nonceStr()
		require.Len(t, nonce, 32)
		for _, ch := range nonce {
			assert.Contains(t, nonceAlphabet, string(ch))
		}
		assert.False(t, seen[nonce], "nonce repeated: %s", nonce)
		seen[nonce] = true
	}
}

func TestEnvelope_SignedFieldsFlattenBizContent(t *testing.T) {
	env := newEnvelope(methodPreOrder, map[string]any{
		"appid": "111",
		"mandate_data": map[string]string{
			"mctContractNo":     "CT-12345",
			"mandateTemplateId": "103001",
		},
	})

	fields, err := env.signedFields()
	require.NoError(t, err)

	assert.Equal(t, env.Timestamp, fields["timestamp"])
	assert.Equal(t, env.NonceStr, fields["nonce_str"])
	assert.Equal(t, methodPreOrder, fields["method"])
	assert.Equal(t, protocolVersion, fields["version"])
	assert.Equal(t, "111", fields["appid"])
	// Nested blocks are JSON-encoded with sorted keys.
	assert.Equal(t, `{"mctContractNo":"CT-12345","mandateTemplateId":"103001"}`, fields["mandate_data"])
}
