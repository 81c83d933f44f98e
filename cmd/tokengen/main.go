// Package main generates admin tokens for the SSI backend. It prints a fresh
// random token together with its bcrypt hash; the hash goes into
// ADMIN_TOKEN_HASH and the plaintext is handed to the operator once.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Muhammad-Masood/ssi-system-backend/pkg/secrets"
)

type output struct {
	Token string            `json:"token"`
	Hash  string            `json:"hash"`
	Usage map[string]string `json:"usage"`
}

func main() {
	token := flag.String("token", "", "hash this token instead of generating a new one")
	flag.Parse()

	plaintext := *token
	if plaintext == "" {
		generated, err := secrets.Generate()
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate token:", err)
			os.Exit(1)
		}
		plaintext = generated
	}

	hash, err := secrets.Hash(plaintext)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash token:", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(output{
		Token: plaintext,
		Hash:  hash,
		Usage: map[string]string{
			"env":    "export ADMIN_TOKEN_HASH='" + hash + "'",
			"header": "X-Admin-Token: " + plaintext,
		},
	})
}
