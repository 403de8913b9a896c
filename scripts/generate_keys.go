//go:build ignore

// This script generates the secrets used by JWT and API key authentication.
// Run with: go run scripts/generate_keys.go [client-id ...]
//
// Each client ID gets a random secret and the bcrypt hash that goes into
// AUTH_CLIENTS. Only the hash is stored by the service.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	fmt.Println("=== Pressure Drop Service Key Generator ===")
	fmt.Println()

	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("JWT secret", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("API key", err)
	}

	clientIDs := os.Args[1:]
	if len(clientIDs) == 0 {
		clientIDs = []string{"default-client"}
	}

	clients := make([]string, 0, len(clientIDs))
	secrets := make([]string, 0, len(clientIDs))
	for _, id := range clientIDs {
		secret, err := generateSecureKey(24)
		if err != nil {
			fail("client secret", err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			fail("client secret hash", err)
		}
		clients = append(clients, id+":"+string(hash))
		secrets = append(secrets, fmt.Sprintf("%s  %s", id, secret))
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT Configuration")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Printf("AUTH_CLIENTS=%s\n", strings.Join(clients, ","))
	fmt.Println()
	fmt.Println("# API Key (optional, for API key authentication)")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Println()
	fmt.Println("# Client secrets (hand these to the clients, do not store them)")
	for _, s := range secrets {
		fmt.Println(s)
	}
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment")
}
