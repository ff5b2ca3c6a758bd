package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// credentialFile mirrors the on-disk TOML credential table:
//
//	[OPENROUTER]
//	OPENROUTER_API_KEY = "sk-..."
type credentialFile struct {
	OpenRouter struct {
		APIKey string `toml:"OPENROUTER_API_KEY"`
	} `toml:"OPENROUTER"`
}

// LoadAPIKey resolves the generation-service bearer token. A local
// credential file wins when present; otherwise the process environment
// acts as the secret store.
func LoadAPIKey(path string) (string, error) {
	if raw, err := os.ReadFile(path); err == nil {
		var creds credentialFile
		if err := toml.Unmarshal(raw, &creds); err != nil {
			return "", fmt.Errorf("parse credential file %s: %w", path, err)
		}
		if key := strings.TrimSpace(creds.OpenRouter.APIKey); key != "" {
			return key, nil
		}
		return "", fmt.Errorf("credential file %s has no OPENROUTER_API_KEY", path)
	}

	if key := strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("OPENROUTER_API_KEY not found in %s or environment", path)
}
