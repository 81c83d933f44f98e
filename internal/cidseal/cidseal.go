// Package cidseal applies authenticated symmetric encryption to content
// identifiers before they are anchored on the ledger, keeping the blob
// location confidential while the ledger entry stays verifiable.
package cidseal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

const (
	// KeySize selects AES-128.
	KeySize = 16
	// NonceSize is the standard GCM nonce length.
	NonceSize = 12
	// TagSize is the GCM authentication tag length appended to the ciphertext.
	TagSize = 16
)

// Sealer seals and opens content identifiers with AES-128-GCM.
//
// Earlier deployments encrypted every identifier under a single fixed
// key+nonce pair, which defeats GCM's confidentiality guarantee once two
// identifiers are sealed. Seal therefore draws a fresh nonce per call and
// prepends it to the envelope: nonce || ciphertext || tag. Open still accepts
// the legacy layout (ciphertext || tag, decrypted under the configured nonce)
// so entries already anchored on the ledger remain readable.
type Sealer struct {
	aead        cipher.AEAD
	legacyNonce []byte
}

// New builds a Sealer from hex-encoded key material. The key must be 16 bytes
// and the legacy nonce 12 bytes once decoded.
func New(keyHex, nonceHex string) (*Sealer, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != KeySize {
		return nil, dErrors.New(dErrors.CodeMalformedInput, "secret key must be 16 bytes of hex")
	}
	nonce, err := hex.DecodeString(nonceHex)
	if err != nil || len(nonce) != NonceSize {
		return nil, dErrors.New(dErrors.CodeMalformedInput, "secret nonce must be 12 bytes of hex")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "cipher init failed")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "cipher init failed")
	}

	return &Sealer{aead: aead, legacyNonce: nonce}, nil
}

// Seal encrypts a plaintext content identifier into a binary envelope of the
// form nonce || ciphertext || tag.
func (s *Sealer) Seal(plaintext string) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "nonce generation failed")
	}
	sealed := s.aead.Seal(nil, nonce, []byte(plaintext), nil)
	return append(nonce, sealed...), nil
}

// Open authenticates and decrypts an envelope produced by Seal, or a legacy
// fixed-nonce envelope (ciphertext || tag with no nonce prefix).
func (s *Sealer) Open(envelope []byte) (string, error) {
	if len(envelope) < TagSize {
		return "", dErrors.New(dErrors.CodeIntegrity, "envelope too short")
	}

	if len(envelope) >= NonceSize+TagSize {
		nonce, rest := envelope[:NonceSize], envelope[NonceSize:]
		if plain, err := s.aead.Open(nil, nonce, rest, nil); err == nil {
			return string(plain), nil
		}
	}

	plain, err := s.aead.Open(nil, s.legacyNonce, envelope, nil)
	if err != nil {
		return "", dErrors.New(dErrors.CodeIntegrity, "envelope authentication failed")
	}
	return string(plain), nil
}

// SealString seals a plaintext identifier and base64-encodes the envelope,
// matching the string form stored in side-database mirrors and, after hex
// encoding, on the ledger.
func (s *Sealer) SealString(plaintext string) (string, error) {
	envelope, err := s.Seal(plaintext)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(envelope), nil
}

// OpenString reverses SealString.
func (s *Sealer) OpenString(encoded string) (string, error) {
	envelope, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeMalformedInput, "invalid base64 envelope")
	}
	return s.Open(envelope)
}
