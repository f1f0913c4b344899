package crypto

import "github.com/dterekhov/go-mem-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService отвечает за всю клиентскую криптографию агента.
// Он не знает ничего о сети, базе данных или протоколе синхронизации.
// Его единственная задача — выводить и применять ключ устройства.
//
// Схема работы:
//
//	Salt   = GenerateSalt()                      (Шаг 1)
//	Key    = DeriveDeviceKey(secret, salt)       (Шаг 2)
//	Fprint = Fingerprint(Key)                    (Шаг 3, показывается при pairing)
//	Sealed = Seal(plaintext, Key)                (Шаг 4)
type KeyChainService interface {
	// GenerateSalt генерирует случайную соль (16 байт / 128 бит).
	// Соль не является секретом — она хранится локально открыто.
	// Шаг 1.
	GenerateSalt() ([]byte, error)

	// DeriveDeviceKey выводит ключ устройства из секрета и соли через
	// Argon2id. Ключ существует только в памяти агента и никогда не
	// отправляется на relay.
	// Шаг 2.
	DeriveDeviceKey(secret string, salt []byte) []byte

	// Fingerprint computes the public fingerprint of the device key, shown
	// to the user when pairing a new device. It is a one-way digest: the
	// relay stores it but cannot recover the key.
	// Шаг 3.
	Fingerprint(key []byte) string

	// Seal encrypts plaintext with the device key using AES-256-GCM and
	// returns the split payload (IV, ciphertext, auth tag). The payload is
	// safe to hand to the relay: without the key it is random noise.
	// Шаг 4.
	Seal(plaintext, key []byte) (models.EncryptedPayload, error)

	// Open decrypts a payload produced by Seal. Returns an error if the key
	// is wrong or the ciphertext was tampered with (auth-tag mismatch).
	Open(payload models.EncryptedPayload, key []byte) ([]byte, error)

	// SealContent encrypts a value as JSON and packs it into the wire form
	// (base64 of IV || ciphertext || tag) carried inside delta operations.
	SealContent(data any, key []byte) (models.CipheredContent, error)

	// OpenContent unpacks and decrypts wire-form content and unmarshals the
	// result into the target pointer (same contract as json.Unmarshal).
	OpenContent(content models.CipheredContent, key []byte, target any) error
}
