package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration. Everything the managers need is
// injected explicitly from here so no package keeps global provider/contract
// handles.
type Server struct {
	Addr string

	// Ledger (anchor registry contract).
	RPCURL          string
	ContractAddress string
	ChainID         int64

	// Content-addressed storage.
	CASPinEndpoint string
	CASGatewayURL  string
	CASToken       string

	// Confidentiality transform key material (hex-encoded).
	SecretKeyHex   string
	SecretNonceHex string

	// Side-database (optional; stores fall back to memory when empty).
	DatabaseURL string

	// bcrypt hash guarding admin-only routes; empty disables the guard.
	AdminTokenHash string

	ExternalCallTimeout time.Duration
}

// DefaultExternalCallTimeout bounds every ledger RPC and blob store call.
var DefaultExternalCallTimeout = 15 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SSI_BACKEND_ADDR")
	if addr == "" {
		addr = ":3001"
	}

	chainID := int64(1)
	if v := os.Getenv("CHAIN_ID"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			chainID = parsed
		}
	}

	timeout := DefaultExternalCallTimeout
	if v := os.Getenv("EXTERNAL_CALL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}

	keyHex := os.Getenv("SECRET_KEY")
	if keyHex == "" {
		// Development default - must be overridden in production
		keyHex = "9737bc0d89fe3b3d64a66b8fa2b35fea"
	}
	nonceHex := os.Getenv("SECRET_NONCE")
	if nonceHex == "" {
		nonceHex = "8965cb1e28c8e54ea3546af8"
	}

	gateway := os.Getenv("CAS_GATEWAY_URL")
	if gateway == "" {
		gateway = "https://pink-gentle-krill-627.mypinata.cloud/ipfs"
	}
	pinEndpoint := os.Getenv("CAS_PIN_ENDPOINT")
	if pinEndpoint == "" {
		pinEndpoint = "https://api.pinata.cloud/pinning/pinJSONToIPFS"
	}

	return Server{
		Addr:                addr,
		RPCURL:              os.Getenv("RPC_URL"),
		ContractAddress:     os.Getenv("CONTRACT_ADDRESS"),
		ChainID:             chainID,
		CASPinEndpoint:      pinEndpoint,
		CASGatewayURL:       gateway,
		CASToken:            os.Getenv("CAS_TOKEN"),
		SecretKeyHex:        keyHex,
		SecretNonceHex:      nonceHex,
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		AdminTokenHash:      os.Getenv("ADMIN_TOKEN_HASH"),
		ExternalCallTimeout: timeout,
	}
}
