package jwtoken

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// DecodedToken is the stored form of a token. Data holds the signing input
// (header.payload) and Signature the encoded signature, so the original token
// can be reconstructed byte for byte.
type DecodedToken struct {
	Header    map[string]any `json:"header"`
	Payload   map[string]any `json:"payload"`
	Data      string         `json:"data"`
	Signature string         `json:"signature"`
}

// Reconstruct rebuilds the compact token string from a decoded document.
func (d DecodedToken) Reconstruct() string {
	return d.Data + "." + d.Signature
}

// Decode splits a compact token without verifying it. This is the resolution
// path; callers that care about authenticity go through Verify.
func Decode(tokenString string) (DecodedToken, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	token, parts, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return DecodedToken{}, dErrors.Wrap(err, dErrors.CodeMalformedToken, "token does not decode")
	}
	if len(parts) != 3 {
		return DecodedToken{}, dErrors.New(dErrors.CodeMalformedToken, "token is not in compact form")
	}
	return DecodedToken{
		Header:    token.Header,
		Payload:   map[string]any(claims),
		Data:      strings.Join(parts[:2], "."),
		Signature: parts[2],
	}, nil
}
