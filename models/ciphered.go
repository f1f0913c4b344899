package models

import (
	"encoding/base64"
	"errors"
)

type (
	// CipheredContent is a base64 string holding AES-GCM ciphertext.
	// The actual structure and meaning of the data are unknown to the relay.
	CipheredContent string

	// CipheredKey is an encrypted entity key reference. Opaque to the relay.
	CipheredKey string
)

// EncryptedPayload is one sealed entity blob as it travels through the sync
// protocol: ciphertext plus the AES-GCM initialization vector and
// authentication tag needed to open it on another device.
//
// The sync core never encrypts or decrypts; it only carries these triples.
type EncryptedPayload struct {
	// Ciphertext is the sealed entity content.
	Ciphertext []byte `json:"ciphertext"`

	// IV is the 12-byte AES-GCM nonce used for this payload.
	IV []byte `json:"iv"`

	// AuthTag is the 16-byte GCM authentication tag, kept separate from the
	// ciphertext so receivers can verify before attempting decryption.
	AuthTag []byte `json:"auth_tag"`
}

const (
	gcmNonceSize = 12
	gcmTagSize   = 16
)

// ErrMalformedSealedContent indicates a sealed blob too short to contain a
// nonce and an authentication tag.
var ErrMalformedSealedContent = errors.New("malformed sealed content")

// Sealed packs the payload into its wire form: standard base64 of
// IV || ciphertext || auth tag.
func (p EncryptedPayload) Sealed() CipheredContent {
	blob := make([]byte, 0, len(p.IV)+len(p.Ciphertext)+len(p.AuthTag))
	blob = append(blob, p.IV...)
	blob = append(blob, p.Ciphertext...)
	blob = append(blob, p.AuthTag...)
	return CipheredContent(base64.StdEncoding.EncodeToString(blob))
}

// ParseSealed splits a sealed wire blob back into its payload parts.
func ParseSealed(c CipheredContent) (EncryptedPayload, error) {
	blob, err := base64.StdEncoding.DecodeString(string(c))
	if err != nil {
		return EncryptedPayload{}, ErrMalformedSealedContent
	}
	if len(blob) < gcmNonceSize+gcmTagSize {
		return EncryptedPayload{}, ErrMalformedSealedContent
	}
	tagStart := len(blob) - gcmTagSize
	return EncryptedPayload{
		IV:         blob[:gcmNonceSize],
		Ciphertext: blob[gcmNonceSize:tagStart],
		AuthTag:    blob[tagStart:],
	}, nil
}
