// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Token decoding errors. Callers treat every one of them as "no session".
var (
	// ErrMalformedToken is returned when the token is not two non-empty
	// base64url segments separated by a single dot.
	ErrMalformedToken = errors.New("malformed token")
	// ErrInvalidTokenSignature is returned when the signature does not match
	// the payload under the current secret.
	ErrInvalidTokenSignature = errors.New("invalid token signature")
	// ErrInvalidTokenClaims is returned when a correctly signed payload
	// cannot be decoded into the requested claims.
	ErrInvalidTokenClaims = errors.New("invalid token claims")
	// ErrEmptyTokenSecret is returned by NewTokenCodec for an empty secret.
	ErrEmptyTokenSecret = errors.New("token secret must not be empty")
)

// tokenEncoding is base64url without padding for both token segments.
// Strict rejects non-zero trailing bits in the final character.
var tokenEncoding = base64.RawURLEncoding.Strict()

// TokenCodec signs and verifies compact session tokens of the form
//
//	base64url(JSON(claims)) + "." + base64url(HMAC-SHA256(secret, payloadSegment))
//
// The HMAC is computed over the encoded payload segment, not the raw JSON.
// Tokens carry no header and no expiry. A TokenCodec is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	method *jwt.SigningMethodHMAC
}

// NewTokenCodec creates a codec bound to secret. Changing the secret
// invalidates every token issued with the previous one.
func NewTokenCodec(secret string) (*TokenCodec, error) {
	if secret == "" {
		return nil, ErrEmptyTokenSecret
	}

	return &TokenCodec{
		secret: []byte(secret),
		method: jwt.SigningMethodHS256,
	}, nil
}

// Encode serializes claims to JSON and returns the signed token.
// It fails only if claims cannot be marshaled.
func (c *TokenCodec) Encode(claims any) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("error marshaling token claims: %w", err)
	}

	payloadSegment := tokenEncoding.EncodeToString(payload)

	signature, err := c.method.Sign(payloadSegment, c.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return payloadSegment + "." + tokenEncoding.EncodeToString(signature), nil
}

// Decode verifies token and unmarshals its payload into claims, which must
// be a pointer. The payload is parsed only after the signature is verified.
// The signature segment must equal the canonical encoding of the expected
// HMAC byte for byte, compared in constant time.
func (c *TokenCodec) Decode(token string, claims any) error {
	payloadSegment, signatureSegment, ok := strings.Cut(token, ".")
	if !ok || payloadSegment == "" || signatureSegment == "" || strings.Contains(signatureSegment, ".") {
		return ErrMalformedToken
	}

	if _, err := tokenEncoding.DecodeString(signatureSegment); err != nil {
		return ErrMalformedToken
	}

	expected, err := c.method.Sign(payloadSegment, c.secret)
	if err != nil {
		return fmt.Errorf("error signing token: %w", err)
	}

	// decoders skip CR and LF even in strict mode, so compare encoded forms
	if !hmac.Equal([]byte(tokenEncoding.EncodeToString(expected)), []byte(signatureSegment)) {
		return ErrInvalidTokenSignature
	}

	payload, err := tokenEncoding.DecodeString(payloadSegment)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTokenClaims, err)
	}

	if err = json.Unmarshal(payload, claims); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTokenClaims, err)
	}

	return nil
}
