// Package jwtoken implements the ES256K (secp256k1) token layer used for
// decentralized identifiers and verifiable credentials. Signatures carry the
// recovery id, so a verifier resolves the signing key from the signature
// itself and checks it against the address component of the issuer DID. No
// external resolver service is involved.
package jwtoken

import (
	"crypto/ecdsa"
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// recoverableSigLen is the length of a secp256k1 signature with recovery id.
const recoverableSigLen = 65

// SigningMethodES256K signs with a secp256k1 private key and verifies by
// recovering the public key from the signature and comparing the derived
// address against the expected controller address.
type SigningMethodES256K struct{}

// ES256K is the shared signing method instance.
var ES256K = &SigningMethodES256K{}

func init() {
	jwt.RegisterSigningMethod(ES256K.Alg(), func() jwt.SigningMethod {
		return ES256K
	})
}

// Alg returns the JOSE algorithm name.
func (m *SigningMethodES256K) Alg() string {
	return "ES256K"
}

// Sign produces a 65-byte recoverable signature over the SHA-256 digest of
// the signing string. The key must be an *ecdsa.PrivateKey on secp256k1.
func (m *SigningMethodES256K) Sign(signingString string, key interface{}) ([]byte, error) {
	privKey, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, dErrors.New(dErrors.CodeSigning, "signing key must be an ecdsa private key")
	}

	hash := sha256.Sum256([]byte(signingString))
	sig, err := crypto.Sign(hash[:], privKey)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeSigning, "secp256k1 signing failed")
	}
	return sig, nil
}

// Verify recovers the signer's public key from the signature and checks that
// the derived address matches the expected one. The key must be a
// common.Address.
func (m *SigningMethodES256K) Verify(signingString string, sig []byte, key interface{}) error {
	expected, ok := key.(common.Address)
	if !ok {
		return dErrors.New(dErrors.CodeVerification, "verification key must be a controller address")
	}
	if len(sig) != recoverableSigLen {
		return dErrors.New(dErrors.CodeVerification, "signature is not recoverable")
	}

	hash := sha256.Sum256([]byte(signingString))
	pubKeyBytes, err := crypto.Ecrecover(hash[:], sig)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeVerification, "public key recovery failed")
	}
	pubKey, err := crypto.UnmarshalPubkey(pubKeyBytes)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeVerification, "recovered key is invalid")
	}

	if crypto.PubkeyToAddress(*pubKey) != expected {
		return dErrors.New(dErrors.CodeVerification, "signer does not control the issuer identifier")
	}
	return nil
}
