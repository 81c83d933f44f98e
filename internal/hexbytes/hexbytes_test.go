package hexbytes

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

type HexBytesSuite struct {
	suite.Suite
}

func TestHexBytesSuite(t *testing.T) {
	suite.Run(t, new(HexBytesSuite))
}

func (s *HexBytesSuite) TestRoundTrip() {
	cases := []string{
		"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		"",
		"hello world",
		"ünïcödé ⚡",
		"did:ethr:healthcare-app:0x1F4D71254a9175c13c6e8ff441f42D4aE42487De",
	}
	for _, c := range cases {
		s.Run(c, func() {
			encoded := Encode(c)
			decoded, err := Decode(encoded)
			s.Require().NoError(err)
			s.Equal(c, decoded)
		})
	}
}

func (s *HexBytesSuite) TestEncodeIsHexPrefixed() {
	s.Equal("0x6869", Encode("hi"))
}

func (s *HexBytesSuite) TestDecodeRejectsMissingPrefix() {
	_, err := Decode("6869")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeMalformedInput))
}

func (s *HexBytesSuite) TestDecodeRejectsInvalidHex() {
	_, err := Decode("0xzzzz")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeMalformedInput))
}

func (s *HexBytesSuite) TestDecodeRejectsOddLength() {
	_, err := Decode("0x686")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeMalformedInput))
}
