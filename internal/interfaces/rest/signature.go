package rest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrInvalidSignature is returned when a webhook payload does not match its
// signature header.
var ErrInvalidSignature = errors.New("webhook signature mismatch")

// SignatureVerifier authenticates an inbound webhook payload. Verification
// is mandatory; there is no pass-through implementation.
type SignatureVerifier interface {
	Verify(payload []byte, signature string) error
}

// HMACVerifier checks a hex-encoded HMAC-SHA256 of the raw payload, the
// scheme both gateways document for server callbacks.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) Verify(payload []byte, signature string) error {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	if !hmac.Equal(expected, provided) {
		return ErrInvalidSignature
	}
	return nil
}
