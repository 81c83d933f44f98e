package cidseal

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

const (
	testKeyHex   = "9737bc0d89fe3b3d64a66b8fa2b35fea"
	testNonceHex = "8965cb1e28c8e54ea3546af8"
)

type SealerSuite struct {
	suite.Suite
	sealer *Sealer
}

func (s *SealerSuite) SetupTest() {
	sealer, err := New(testKeyHex, testNonceHex)
	s.Require().NoError(err)
	s.sealer = sealer
}

func TestSealerSuite(t *testing.T) {
	suite.Run(t, new(SealerSuite))
}

func (s *SealerSuite) TestNewRejectsBadKeyMaterial() {
	s.Run("short key", func() {
		_, err := New("9737bc0d", testNonceHex)
		s.True(dErrors.HasCode(err, dErrors.CodeMalformedInput))
	})
	s.Run("non-hex key", func() {
		_, err := New("zz37bc0d89fe3b3d64a66b8fa2b35fea", testNonceHex)
		s.True(dErrors.HasCode(err, dErrors.CodeMalformedInput))
	})
	s.Run("short nonce", func() {
		_, err := New(testKeyHex, "8965cb1e")
		s.True(dErrors.HasCode(err, dErrors.CodeMalformedInput))
	})
}

func (s *SealerSuite) TestRoundTrip() {
	cids := []string{
		"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		"bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		"",
	}
	for _, cid := range cids {
		s.Run(cid, func() {
			envelope, err := s.sealer.Seal(cid)
			s.Require().NoError(err)

			plain, err := s.sealer.Open(envelope)
			s.Require().NoError(err)
			s.Equal(cid, plain)
		})
	}
}

func (s *SealerSuite) TestSealUsesFreshNonces() {
	a, err := s.sealer.Seal("QmSame")
	s.Require().NoError(err)
	b, err := s.sealer.Seal("QmSame")
	s.Require().NoError(err)
	s.NotEqual(a, b, "two seals of the same plaintext must not produce the same envelope")
}

func (s *SealerSuite) TestTamperDetection() {
	envelope, err := s.sealer.Seal("QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
	s.Require().NoError(err)

	// Flip one bit at a time across the envelope: every position must fail.
	for i := range envelope {
		tampered := make([]byte, len(envelope))
		copy(tampered, envelope)
		tampered[i] ^= 0x01

		_, err := s.sealer.Open(tampered)
		s.Require().Error(err, "bit flip at byte %d must be detected", i)
		s.True(dErrors.HasCode(err, dErrors.CodeIntegrity))
	}
}

func (s *SealerSuite) TestOpenRejectsShortEnvelope() {
	_, err := s.sealer.Open([]byte{0x01, 0x02})
	s.True(dErrors.HasCode(err, dErrors.CodeIntegrity))
}

func (s *SealerSuite) TestOpenAcceptsLegacyFixedNonceEnvelope() {
	// Envelope written by the original system: ciphertext||tag sealed under
	// the configured fixed nonce, with no nonce prefix.
	key, err := hex.DecodeString(testKeyHex)
	s.Require().NoError(err)
	nonce, err := hex.DecodeString(testNonceHex)
	s.Require().NoError(err)
	block, err := aes.NewCipher(key)
	s.Require().NoError(err)
	aead, err := cipher.NewGCM(block)
	s.Require().NoError(err)

	legacy := aead.Seal(nil, nonce, []byte("QmLegacyAnchor"), nil)

	plain, err := s.sealer.Open(legacy)
	s.Require().NoError(err)
	s.Equal("QmLegacyAnchor", plain)
}

func (s *SealerSuite) TestStringRoundTrip() {
	encoded, err := s.sealer.SealString("QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
	s.Require().NoError(err)

	plain, err := s.sealer.OpenString(encoded)
	s.Require().NoError(err)
	s.Equal("QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", plain)
}

func (s *SealerSuite) TestOpenStringRejectsBadBase64() {
	_, err := s.sealer.OpenString("not-base64!!!")
	s.True(dErrors.HasCode(err, dErrors.CodeMalformedInput))
}
