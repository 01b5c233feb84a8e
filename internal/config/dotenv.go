package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvPath returns the absolute path to the project dotenv file (<root>/.env).
func DotEnvPath(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("cannot resolve root %s: %w", root, err)
	}
	return filepath.Join(abs, ".env"), nil
}

// LoadDotEnv reads <root>/.env and returns key/value pairs.
// A missing file yields an empty map.
func LoadDotEnv(root string) (map[string]string, error) {
	p, err := DotEnvPath(root)
	if err != nil {
		return nil, err
	}
	out, err := godotenv.Read(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return out, nil
}

// EnvLookup reads <root>/.env once and returns a lookup that prefers the
// process environment and falls back to the dotenv values.
func EnvLookup(root string) (func(key string) string, error) {
	dotenv, err := LoadDotEnv(root)
	if err != nil {
		return nil, err
	}
	return func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}, nil
}
