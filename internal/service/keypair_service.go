package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Address format: "SOL" + the first 41 hex characters of the seed's
// SHA-256 digest. The browser client and stored demo fixtures depend
// on this exact shape, so it must not be "upgraded" to real key
// derivation.
const (
	addressPrefix    = "SOL"
	addressHashChars = 41

	publicKeyPrefix = "PUB"
	publicKeyChars  = 10
)

// KeypairServiceImpl implements ports.KeypairService.
type KeypairServiceImpl struct{}

// NewKeypairService creates a new KeypairServiceImpl.
func NewKeypairService() *KeypairServiceImpl {
	return &KeypairServiceImpl{}
}

// GeneratePrivateKey returns a fresh private key: the hex SHA-256
// digest of 32 random bytes (64 hex characters).
func (s *KeypairServiceImpl) GeneratePrivateKey() (string, error) {
	entropy := make([]byte, 32)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("reading entropy: %w", err)
	}
	digest := sha256.Sum256(entropy)
	return hex.EncodeToString(digest[:]), nil
}

// DeriveAddress deterministically derives the pseudo-address for a
// seed string. Same seed, same address — this is the whole login
// mechanism.
func (s *KeypairServiceImpl) DeriveAddress(seed string) string {
	digest := sha256.Sum256([]byte(seed))
	return addressPrefix + hex.EncodeToString(digest[:])[:addressHashChars]
}

// DerivePublicKey derives the display "public key" as a suffix of the
// private key. Not cryptography; a label the UI shows next to the
// address.
func (s *KeypairServiceImpl) DerivePublicKey(privateKey string) string {
	if len(privateKey) <= publicKeyChars {
		return publicKeyPrefix + privateKey
	}
	return publicKeyPrefix + privateKey[len(privateKey)-publicKeyChars:]
}
