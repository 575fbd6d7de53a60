//go:build ignore

// Generates the secrets the cart service reads from the environment.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

type secret struct {
	env     string
	comment string
	bytes   int
}

var secrets = []secret{
	{env: "SESSION_TOKEN_SECRET", comment: "Signs cart session tokens (HS256)", bytes: 32},
	{env: "API_KEYS", comment: "Admin audit log access (X-API-Key)", bytes: 24},
}

func generateSecureKey(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func main() {
	fmt.Println("# cart-sync secrets; use different values per environment")
	for _, s := range secrets {
		key, err := generateSecureKey(s.bytes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", s.env, err)
			os.Exit(1)
		}
		fmt.Printf("# %s\n%s=%s\n", s.comment, s.env, key)
	}
}
