// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/dterekhov/go-mem-sync/models"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG and returns them as the key-derivation salt. Returns an
// error if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveDeviceKey implements [KeyChainService]. It derives a 256-bit device
// key from secret and salt using Argon2id with the parameters stored in the
// receiver. The result exists only in agent memory and is never transmitted
// to the relay.
func (k *keyChainService) DeriveDeviceKey(secret string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(secret),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Fingerprint implements [KeyChainService]. It computes SHA-256 of the
// device key and renders the digest in the "SHA256:<base64>" form familiar
// from OpenSSH host keys.
func (k *keyChainService) Fingerprint(key []byte) string {
	digest := sha256.Sum256(key)
	return "SHA256:" + base64.RawStdEncoding.EncodeToString(digest[:])
}

// Seal implements [KeyChainService]. It encrypts plaintext with key using
// AES-256-GCM under a fresh random 12-byte IV and returns the split payload.
// The GCM auth tag occupies the trailing 16 bytes of gcm.Seal output and is
// carried separately in the payload.
func (k *keyChainService) Seal(plaintext, key []byte) (models.EncryptedPayload, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.EncryptedPayload{}, err
	}

	sealed := gcm.Seal(nil, iv, plaintext, nil)
	tagStart := len(sealed) - gcm.Overhead()

	return models.EncryptedPayload{
		Ciphertext: sealed[:tagStart],
		IV:         iv,
		AuthTag:    sealed[tagStart:],
	}, nil
}

// Open implements [KeyChainService]. It reassembles ciphertext and tag and
// decrypts the payload produced by [keyChainService.Seal]. An error here
// almost always means a wrong device secret, producing a wrong key.
func (k *keyChainService) Open(payload models.EncryptedPayload, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(payload.IV) != gcm.NonceSize() {
		return nil, fmt.Errorf("bad iv length %d", len(payload.IV))
	}

	sealed := append(append([]byte{}, payload.Ciphertext...), payload.AuthTag...)

	plaintext, err := gcm.Open(nil, payload.IV, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt payload: %w", err)
	}

	return plaintext, nil
}

// SealContent implements [KeyChainService].
//
// Steps:
//  1. Marshal the value to JSON
//  2. Seal it with the device key
//  3. Pack IV || ciphertext || tag into the base64 wire form
func (k *keyChainService) SealContent(data any, key []byte) (models.CipheredContent, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	payload, err := k.Seal(plaintext, key)
	if err != nil {
		return "", fmt.Errorf("seal data: %w", err)
	}

	return payload.Sealed(), nil
}

// OpenContent implements [KeyChainService]. It reverses
// [keyChainService.SealContent].
func (k *keyChainService) OpenContent(content models.CipheredContent, key []byte, target any) error {
	payload, err := models.ParseSealed(content)
	if err != nil {
		return fmt.Errorf("parse sealed content: %w", err)
	}

	plaintext, err := k.Open(payload, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
