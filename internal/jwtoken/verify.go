package jwtoken

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// Verify checks a token's signature against the address component of its iss
// claim and enforces expiry. On success it returns the verified payload.
func Verify(tokenString string) (map[string]any, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{ES256K.Alg()}))
	claims := jwt.MapClaims{}

	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		issuer, err := token.Claims.GetIssuer()
		if err != nil || issuer == "" {
			return nil, dErrors.New(dErrors.CodeVerification, "token has no issuer")
		}
		return AddressOf(issuer)
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, dErrors.Wrap(err, dErrors.CodeMalformedToken, "token does not decode")
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, dErrors.Wrap(err, dErrors.CodeVerification, "token is expired")
		case dErrors.HasCode(err, dErrors.CodeUnsupportedMethod):
			return nil, err
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeVerification, "token verification failed")
		}
	}
	return map[string]any(claims), nil
}
