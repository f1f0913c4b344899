package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token with convenience accessors for the device
// authentication flow.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or the
// WebSocket handshake.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the relay process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// DeviceID is the device identifier extracted from the "sub" claim;
	// an internal relay-side cache.
	DeviceID string `json:"-"`

	// AccountID is the owning account, carried in the private "acc" claim so
	// the relay can scope a connection without a registry lookup.
	AccountID string `json:"acc,omitempty"`
}

// GetDeviceID extracts the device identifier from the token's "sub"
// (subject) claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetDeviceID() (string, error) {
	deviceID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting device ID from token: %w", err)
	}
	if deviceID == "" {
		return "", fmt.Errorf("empty subject claim in token")
	}

	return deviceID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
