// Package aminer provides a client for the AMiner open-platform API.
// Requests are authenticated with a short-lived HS256-signed token built
// from the account's API key and user ID.
package aminer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTokenTTL is how long a generated token stays valid.
const DefaultTokenTTL = 2 * time.Hour

type tokenHeader struct {
	Alg      string `json:"alg"`
	SignType string `json:"sign_type"`
	Typ      string `json:"typ"`
}

type tokenPayload struct {
	UserID    string `json:"user_id"`
	Exp       int64  `json:"exp"`
	Timestamp int64  `json:"timestamp"`
}

// signToken builds the signed token the gateway expects: a JWT-shaped
// header.payload.signature triple, HMAC-SHA256 over the first two parts
// keyed with the API key.
func signToken(apiKey, userID string, now time.Time, ttl time.Duration) (string, error) {
	header := tokenHeader{Alg: "HS256", SignType: "SIGN", Typ: "JWT"}
	payload := tokenPayload{
		UserID:    userID,
		Exp:       now.Add(ttl).Unix(),
		Timestamp: now.Unix(),
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("marshaling token header: %w", err)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling token payload: %w", err)
	}

	enc := base64.RawURLEncoding
	signingInput := enc.EncodeToString(headerJSON) + "." + enc.EncodeToString(payloadJSON)

	mac := hmac.New(sha256.New, []byte(apiKey))
	mac.Write([]byte(signingInput))
	signature := enc.EncodeToString(mac.Sum(nil))

	return signingInput + "." + signature, nil
}
