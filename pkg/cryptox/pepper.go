package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

// LoadOrCreatePepper reads the pepper stored at path. When the file does
// not exist a new random pepper is generated and written with 0600
// permissions, creating parent directories as needed.
func LoadOrCreatePepper(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("cryptox: empty pepper path")
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", fmt.Errorf("create pepper dir: %w", err)
	}

	b, err := os.ReadFile(path) // #nosec G304 - path comes from operator config
	switch {
	case err == nil:
		p := strings.TrimSpace(string(b))
		if p == "" {
			return "", fmt.Errorf("cryptox: pepper file %s is empty", path)
		}
		return p, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read pepper: %w", err)
	}

	raw := make([]byte, keyLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	pepper := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(path, []byte(pepper), 0600); err != nil {
		return "", fmt.Errorf("write pepper: %w", err)
	}
	return pepper, nil
}
