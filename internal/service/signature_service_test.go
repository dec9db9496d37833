package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyc-webhook-simulator/internal/core/domain"
)

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()
	secret := "my-secret-key"
	payload := []byte(`{"check_id":"abc","status":"approved"}`)
	ts := time.Now().Unix()

	sig, err := svc.Sign(payload, domain.ProviderMock1, ts, secret)
	require.NoError(t, err)

	// sha256= prefix plus 64-char lowercase hex
	assert.Regexp(t, `^sha256=[0-9a-f]{64}$`, sig)
	assert.True(t, svc.Verify(payload, sig, domain.ProviderMock1, ts, secret))
}

func TestHMACSignatureService_SchemePerProvider(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte(`{"id":"x"}`)
	ts := int64(1708092000)

	tests := []struct {
		provider domain.Provider
		pattern  string
	}{
		{domain.ProviderMock1, `^sha256=[0-9a-f]{64}$`},
		{domain.ProviderMock2, `^sha512=[0-9a-f]{128}$`},
		{domain.ProviderJumio, `^sha256=[0-9a-f]{64}$`},
		{domain.ProviderOnfido, `^sha1=[0-9a-f]{40}$`},
		{domain.ProviderVeriff, `^hmac-sha256=[0-9a-f]{64}$`},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			sig, err := svc.Sign(payload, tt.provider, ts, "secret")
			require.NoError(t, err)
			assert.Regexp(t, tt.pattern, sig)
			assert.True(t, svc.Verify(payload, sig, tt.provider, ts, "secret"))
		})
	}
}

func TestHMACSignatureService_VerifyFails_WrongKey(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte("test payload")
	ts := time.Now().Unix()

	sig, err := svc.Sign(payload, domain.ProviderMock1, ts, "correct-key")
	require.NoError(t, err)
	assert.False(t, svc.Verify(payload, sig, domain.ProviderMock1, ts, "wrong-key"))
}

func TestHMACSignatureService_VerifyFails_TamperedPayload(t *testing.T) {
	svc := NewHMACSignatureService()
	ts := time.Now().Unix()

	sig, err := svc.Sign([]byte("original"), domain.ProviderMock1, ts, "key")
	require.NoError(t, err)
	assert.False(t, svc.Verify([]byte("tampered"), sig, domain.ProviderMock1, ts, "key"))
}

func TestHMACSignatureService_VerifyFails_DifferentTimestamp(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := []byte("payload")

	sig, err := svc.Sign(payload, domain.ProviderMock1, 1708092000, "key")
	require.NoError(t, err)
	assert.False(t, svc.Verify(payload, sig, domain.ProviderMock1, 1708092001, "key"))
}

func TestHMACSignatureService_VerifyFails_EmptySignature(t *testing.T) {
	svc := NewHMACSignatureService()
	assert.False(t, svc.Verify([]byte("payload"), "", domain.ProviderMock1, 0, "key"))
}

func TestHMACSignatureService_VerifyFails_UnknownProvider(t *testing.T) {
	svc := NewHMACSignatureService()
	assert.False(t, svc.Verify([]byte("payload"), "sha256=deadbeef", domain.Provider("nope"), 0, "key"))
}

func TestHMACSignatureService_DeterministicSign(t *testing.T) {
	svc := NewHMACSignatureService()

	sig1, err1 := svc.Sign([]byte("data"), domain.ProviderVeriff, 1708092000, "key")
	sig2, err2 := svc.Sign([]byte("data"), domain.ProviderVeriff, 1708092000, "key")

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, sig1, sig2)
}

func TestHMACSignatureService_ValidateTimestamp(t *testing.T) {
	svc := NewHMACSignatureService()

	assert.NoError(t, svc.ValidateTimestamp(time.Now().Unix(), domain.ProviderMock1, 0))
	assert.NoError(t, svc.ValidateTimestamp(time.Now().Add(-4*time.Minute).Unix(), domain.ProviderMock1, 0))
	assert.Error(t, svc.ValidateTimestamp(time.Now().Add(-6*time.Minute).Unix(), domain.ProviderMock1, 0))
	// future timestamps beyond tolerance are rejected too
	assert.Error(t, svc.ValidateTimestamp(time.Now().Add(6*time.Minute).Unix(), domain.ProviderMock1, 0))
	// mock_provider_2 tolerates 600s
	assert.NoError(t, svc.ValidateTimestamp(time.Now().Add(-6*time.Minute).Unix(), domain.ProviderMock2, 0))
	// explicit tolerance overrides the provider default
	assert.Error(t, svc.ValidateTimestamp(time.Now().Add(-2*time.Minute).Unix(), domain.ProviderMock1, time.Minute))
}

func TestHMACSignatureService_ExtractSignature(t *testing.T) {
	svc := NewHMACSignatureService()

	h := http.Header{}
	h.Set("X-Webhook-Signature", " sha256=abc ")
	h.Set("X-Veriff-Signature", "hmac-sha256=def")

	assert.Equal(t, "sha256=abc", svc.ExtractSignature(h, domain.ProviderMock1))
	assert.Equal(t, "hmac-sha256=def", svc.ExtractSignature(h, domain.ProviderVeriff))
	assert.Equal(t, "", svc.ExtractSignature(h, domain.ProviderJumio))
}

func TestHMACSignatureService_ExtractTimestamp(t *testing.T) {
	svc := NewHMACSignatureService()

	h := http.Header{}
	h.Set("X-Webhook-Timestamp", "1708092000")
	h.Set("X-Provider-Timestamp", "not-a-number")

	ts, ok := svc.ExtractTimestamp(h, domain.ProviderMock1)
	assert.True(t, ok)
	assert.Equal(t, int64(1708092000), ts)

	_, ok = svc.ExtractTimestamp(h, domain.ProviderMock2)
	assert.False(t, ok)
}
