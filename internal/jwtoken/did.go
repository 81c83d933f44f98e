package jwtoken

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// MethodEthr is the only DID method this service anchors.
const MethodEthr = "ethr"

// DID is a parsed decentralized identifier. The address is always the last
// segment; any segments between the method and the address are free-form
// subject labels.
type DID struct {
	Method   string
	Segments []string
	Address  common.Address
}

// ParseDID splits and validates a did:<method>:...:<address> string.
func ParseDID(did string) (DID, error) {
	parts := strings.Split(did, ":")
	if len(parts) < 3 || parts[0] != "did" {
		return DID{}, dErrors.New(dErrors.CodeMalformedInput, "not a decentralized identifier: "+did)
	}
	method := parts[1]
	if method != MethodEthr {
		return DID{}, dErrors.New(dErrors.CodeUnsupportedMethod, "unsupported DID method: "+method)
	}
	addr := parts[len(parts)-1]
	if !common.IsHexAddress(addr) {
		return DID{}, dErrors.New(dErrors.CodeMalformedInput, "identifier does not end in a controller address")
	}
	return DID{
		Method:   method,
		Segments: parts[2 : len(parts)-1],
		Address:  common.HexToAddress(addr),
	}, nil
}

// NewDID builds did:ethr:<subject>:<address>. An empty subject yields the
// reduced form.
func NewDID(subject string, address common.Address) string {
	if subject == "" {
		return "did:" + MethodEthr + ":" + address.Hex()
	}
	return "did:" + MethodEthr + ":" + subject + ":" + address.Hex()
}

// Reduce strips the subject segments, leaving did:ethr:<address>. This is the
// form used as the iss and aud claims of every token the service signs.
func Reduce(did string) (string, error) {
	parsed, err := ParseDID(did)
	if err != nil {
		return "", err
	}
	return NewDID("", parsed.Address), nil
}

// AddressOf extracts the controller address from an identifier.
func AddressOf(did string) (common.Address, error) {
	parsed, err := ParseDID(did)
	if err != nil {
		return common.Address{}, err
	}
	return parsed.Address, nil
}
