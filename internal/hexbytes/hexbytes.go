// Package hexbytes carries arbitrary UTF-8 strings through the ledger's
// binary-typed parameters as 0x-prefixed hex. It mirrors the encoding the
// contract ABI uses for dynamic bytes so entries written by other clients
// decode identically.
package hexbytes

import (
	"encoding/hex"
	"strings"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// Encode converts a UTF-8 string into a 0x-prefixed hex string.
func Encode(s string) string {
	return "0x" + hex.EncodeToString([]byte(s))
}

// Decode converts a 0x-prefixed hex string back into UTF-8.
func Decode(h string) (string, error) {
	if !strings.HasPrefix(h, "0x") {
		return "", dErrors.New(dErrors.CodeMalformedInput, "missing 0x prefix")
	}
	raw, err := hex.DecodeString(h[2:])
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeMalformedInput, "invalid hex input")
	}
	return string(raw), nil
}
