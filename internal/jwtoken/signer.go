package jwtoken

import (
	"crypto/ecdsa"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// DefaultTTL is the lifetime of every token the service signs.
const DefaultTTL = 5 * 24 * time.Hour

// Signer signs tokens with a caller-supplied secp256k1 key. Keys arrive per
// request and never persist; a Signer lives for the duration of one call.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner parses a hex private key (with or without 0x prefix) and derives
// the controller address.
func NewSigner(privKeyHex string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privKeyHex, "0x"))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeMalformedInput, "invalid private key")
	}
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the controller address derived from the signing key.
func (s *Signer) Address() common.Address {
	return s.address
}

// Key exposes the private key for components that sign transactions with the
// same request key, such as the ledger client.
func (s *Signer) Key() *ecdsa.PrivateKey {
	return s.key
}

// Sign issues a token over arbitrary claims. Claims are passed through as-is;
// callers set iss, aud, sub, iat and exp themselves.
func (s *Signer) Sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(ES256K, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeSigning, "token signing failed")
	}
	return signed, nil
}

// SignWithStandardClaims issues a token whose iss and aud are the reduced
// form of the signer's own identifier, with iat now and exp now plus the
// default lifetime. Extra claims are merged in on top.
func (s *Signer) SignWithStandardClaims(subject string, extra jwt.MapClaims) (string, error) {
	now := time.Now()
	reduced := NewDID("", s.address)
	claims := jwt.MapClaims{
		"iss": reduced,
		"aud": reduced,
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(DefaultTTL).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}
	return s.Sign(claims)
}

// AddressFromKey derives the controller address for a hex private key without
// keeping the key around.
func AddressFromKey(privKeyHex string) (common.Address, error) {
	signer, err := NewSigner(privKeyHex)
	if err != nil {
		return common.Address{}, err
	}
	return signer.Address(), nil
}
