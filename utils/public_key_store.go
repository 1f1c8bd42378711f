package utils

import (
	"crypto/rsa"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// PublicKeyStore maps key ids (kid) to RSA public keys. Keys arrive from
// disk at startup and from the auth server's rotation notifications at
// runtime.
type PublicKeyStore struct {
	keys map[string]*rsa.PublicKey
	mu   sync.RWMutex
}

func NewPublicKeyStore() *PublicKeyStore {
	return &PublicKeyStore{
		keys: make(map[string]*rsa.PublicKey),
	}
}

// LoadKeys reads every "<kid>_public.pem" file in dir into the store.
func (store *PublicKeyStore) LoadKeys(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		kid, ok := strings.CutSuffix(name, "_public.pem")
		if !ok {
			continue
		}

		pemData, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read public key file %s: %w", name, err)
		}
		if err := store.AddOrUpdateKey(kid, string(pemData)); err != nil {
			return fmt.Errorf("key file %s: %w", name, err)
		}
	}
	return nil
}

// AddOrUpdateKey parses a PEM public key and stores it under kid,
// overwriting any existing entry.
func (store *PublicKeyStore) AddOrUpdateKey(kid, pemStr string) error {
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemStr))
	if err != nil {
		return fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.keys[kid] = pubKey
	return nil
}

func (store *PublicKeyStore) RemoveKey(kid string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.keys, kid)
}

func (store *PublicKeyStore) GetKey(kid string) (*rsa.PublicKey, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	key, exists := store.keys[kid]
	if !exists {
		return nil, fmt.Errorf("public key not found for kid: %s", kid)
	}
	return key, nil
}
